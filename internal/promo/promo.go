package promo

import (
	"errors"
	"strings"
)

// ErrNotFound возвращается для нераспознанного промокода.
// Это отказ пользователю, а не сбой системы.
var ErrNotFound = errors.New("промокод не найден")

// codes — известные промокоды и их скидка в процентах.
var codes = map[string]int{
	"save10": 10,
	"save20": 20,
}

// Lookup возвращает процент скидки для промокода.
// Регистр кода не учитывается.
func Lookup(code string) (int, error) {
	if discount, ok := codes[strings.ToLower(strings.TrimSpace(code))]; ok {
		return discount, nil
	}
	return 0, ErrNotFound
}
