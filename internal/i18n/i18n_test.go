package i18n

import (
	"testing"

	"stroymarket/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Каталог", T(model.LangRU, "catalog"))
	assert.Equal(t, "Katalog", T(model.LangUZ, "catalog"))

	// Неизвестный язык трактуется как русский
	assert.Equal(t, "Каталог", T("en", "catalog"))

	// Отсутствующий ключ возвращается как есть
	assert.Equal(t, "no_such_key", T(model.LangRU, "no_such_key"))
}

func TestT_OrderStatuses(t *testing.T) {
	for _, status := range []string{
		model.StatusProcessing,
		model.StatusConfirmed,
		model.StatusShipping,
		model.StatusDelivered,
		model.StatusCancelled,
	} {
		ru := T(model.LangRU, status)
		uz := T(model.LangUZ, status)
		assert.NotEqual(t, status, ru)
		assert.NotEqual(t, status, uz)
		assert.NotEqual(t, ru, uz)
	}
}
