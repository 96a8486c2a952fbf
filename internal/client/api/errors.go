package api

import "errors"

// Таксономия ошибок удаленного хранилища. Оркестратор различает их,
// чтобы не путать "сервер недоступен" с "данных еще нет" и чтобы UI
// мог уйти в local-only режим при ненастроенном хранилище.
var (
	// ErrUnreachable означает сетевую ошибку, таймаут или необъясненный
	// не-2xx ответ. Восстановимо повтором со стороны вызывающего.
	ErrUnreachable = errors.New("sync server unreachable")

	// ErrStorageNotConfigured означает, что у сервера не настроен
	// backend хранилища. Check/fetch/write сообщают это единообразно.
	ErrStorageNotConfigured = errors.New("sync storage not configured on server")

	// ErrInvalidHash означает, что сервер отверг Sync ID (400)
	ErrInvalidHash = errors.New("sync server rejected sync id")
)
