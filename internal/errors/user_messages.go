package errors

// User-friendly error messages
const (
	MsgNotFound              = "Запрашиваемая информация не найдена"
	MsgValidation            = "Проверьте правильность введенных данных"
	MsgInsertFailedDuplicate = "Не удалось сохранить данные. Возможно, такая запись уже существует"
	MsgUpdateFailed          = "Не удалось обновить данные"
	MsgUpdateFailedDuplicate = "Не удалось обновить данные. Это значение уже используется другой записью"
	MsgDeleteFailed          = "Не удалось удалить данные"
	MsgDatabase              = "Произошла ошибка при работе с базой данных"
	MsgServiceUnavailable    = "Сервис временно недоступен. Попробуйте позже."
	MsgUnexpected            = "Произошла непредвиденная ошибка"
	MsgUnauthorized          = "Требуется авторизация"
	MsgRateLimited           = "Слишком много запросов. Подождите немного и повторите попытку."
)

// userMessageForOperation returns the message shown for a failed database operation.
func userMessageForOperation(op string) string {
	switch op {
	case OpInsert:
		return MsgInsertFailedDuplicate
	case OpUpdate:
		return MsgUpdateFailed
	case OpDelete:
		return MsgDeleteFailed
	default:
		return MsgDatabase
	}
}

func duplicateMessageForOperation(op string) string {
	if op == OpUpdate {
		return MsgUpdateFailedDuplicate
	}
	return MsgInsertFailedDuplicate
}
