// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const localStorageTable = "local_storage"

func buildGetValueQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpsertValueQuery inserts a value or replaces the one already stored
// under the same key.
func buildUpsertValueQuery(key, value string, at time.Time) (string, []any, error) {
	return sq.Insert(localStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveValueQuery(key string) (string, []any, error) {
	return sq.Delete(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
