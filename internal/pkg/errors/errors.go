package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется для синтаксически некорректных запросов.
	// Зарезервирован таксономией ответов: ни один обработчик сейчас его не порождает.
	ErrBadRequest = errors.New("bad request")

	// ErrUnprocessable используется, когда запрос корректен по форме, но операция
	// не может быть выполнена (отсутствуют обязательные поля, нарушено ограничение БД).
	ErrUnprocessable = errors.New("unprocessable entity")
)
