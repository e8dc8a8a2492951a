package session

import "errors"

var (
	// ErrReadState возвращается, когда файл сессии не удалось прочитать
	ErrReadState = errors.New("session.repository: failed to read state")

	// ErrDecodeState возвращается, когда файл сессии поврежден
	ErrDecodeState = errors.New("session.repository: failed to decode state")

	// ErrWriteState возвращается, когда файл сессии не удалось записать
	ErrWriteState = errors.New("session.repository: failed to write state")
)
