// Package slotengine вычисляет свободные окна для записи.
//
// Все функции пакета чистые: на вход получают шаблон, занятые интервалы и
// снимок текущего времени, ничего не читают из БД и не хранят состояние между вызовами.
// Арифметика ведется в минутах от полуночи (types.Minute) по календарю Europe/Warsaw.
package slotengine
