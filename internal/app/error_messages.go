// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the operator-facing message strings shown by the
// admin console.
//
// Keeping them in one place keeps the wording consistent between screens.
package app

const (
	// MsgServerUnavailable replaces transport errors such as a refused
	// connection or a timeout.
	MsgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

	// MsgBadResponse is shown when a 2xx response could not be decoded.
	MsgBadResponse = "Сервер вернул некорректный ответ"

	MsgCredentialsRequired = "Email и пароль обязательны"
	MsgInvalidEmail        = "Некорректный email"

	MsgTitleRequired = "Название обязательно"
	MsgInvalidPhone  = "Некорректный номер телефона"
	MsgValueTooLong  = "Слишком длинное значение"

	// MsgSessionExpired is shown when the backend rejects the stored token.
	MsgSessionExpired = "Сессия истекла. l: войти заново"

	// MsgPartialLoad is shown when at least one dashboard resource failed.
	MsgPartialLoad = "Часть данных не загружена. r: повторить"

	MsgJobCreated = "Вакансия создана"
	MsgJobSaved   = "Вакансия сохранена"
	MsgJobDeleted = "Вакансия удалена"
	MsgDeleting   = "Удаление..."

	MsgPhoneCopied = "Телефон скопирован"
	MsgNoPhone     = "Нет телефона для копирования"
	MsgCopyFailed  = "Не удалось скопировать: "
)
