package crm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-TireSlotService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент каталога услуг CRM
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CRM
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetServices получает каталог услуг с длительностями
func (c *Client) GetServices(ctx context.Context) ([]domain.Service, error) {
	url := c.baseURL + "/internal/services"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var items []ServiceItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	services := make([]domain.Service, 0, len(items))
	for _, item := range items {
		services = append(services, domain.Service{Name: item.Name, Duration: item.Duration})
	}

	return services, nil
}

// GetServicesWithGracefulDegradation получает каталог с graceful degradation.
// При недоступности CRM возвращает ErrServiceDegraded: вызывающий код использует длительность по умолчанию.
func (c *Client) GetServicesWithGracefulDegradation(ctx context.Context) ([]domain.Service, error) {
	services, err := c.GetServices(ctx)
	if err != nil {
		c.log.Error("CRM unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Fetched %d services from CRM catalog", len(services))
	return services, nil
}
