package workorder

import (
	"github.com/m04kA/SMC-TireSlotService/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor
