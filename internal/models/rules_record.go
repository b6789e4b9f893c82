package models

import (
	"encoding/json"
	"time"
)

// RulesRecord - единственная строка с настройками правил. Правила хранятся
// сериализованным JSON, чтобы не потерять трехзначные переключатели.
type RulesRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Data      string    `gorm:"not null" json:"data"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RulesRecord) TableName() string {
	return "scheduling_rules"
}

// Rules десериализует правила; при пустых или битых данных возвращает
// значения по умолчанию
func (rec *RulesRecord) Rules() SchedulingRules {
	if rec == nil || rec.Data == "" {
		return DefaultSchedulingRules()
	}

	var rules SchedulingRules
	if err := json.Unmarshal([]byte(rec.Data), &rules); err != nil {
		return DefaultSchedulingRules()
	}
	return rules
}

// SetRules сериализует правила в строку записи
func (rec *RulesRecord) SetRules(rules SchedulingRules) error {
	data, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	rec.Data = string(data)
	return nil
}
