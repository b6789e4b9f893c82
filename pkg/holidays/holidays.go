package holidays

import (
	"encoding/json"
	"fmt"
	"os"
)

// BankHoliday - государственный праздник: дата-ключ и название
type BankHoliday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// LoadFile читает JSON-файл со списком праздников
func LoadFile(filePath string) ([]BankHoliday, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read holidays file: %w", err)
	}

	var list []BankHoliday
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal holidays JSON: %w", err)
	}

	return list, nil
}

// ToMap строит отображение дата-ключ -> название праздника
func ToMap(list []BankHoliday) map[string]string {
	m := make(map[string]string, len(list))
	for _, h := range list {
		if h.Date != "" {
			m[h.Date] = h.Name
		}
	}
	return m
}

// Lookup возвращает название праздника на дату, если он есть
func Lookup(list []BankHoliday, dateKey string) (string, bool) {
	for _, h := range list {
		if h.Date == dateKey {
			return h.Name, true
		}
	}
	return "", false
}
