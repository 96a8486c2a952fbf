package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Board и Card — формы, в которых слой представления (здесь CLI) создает
// новые сущности. Для merge engine обе остаются непрозрачным payload:
// сразу после создания они превращаются в Entity и дальше живут как
// исходные байты.

type Board struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Color       string   `json:"color,omitempty"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Column      string   `json:"column,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// NewEntityID генерирует идентификатор сущности из текущего времени.
// Коллизии внутри одного устройства астрономически маловероятны и
// специально не обрабатываются.
func NewEntityID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Entity сериализует доску в непрозрачную запись
func (b Board) Entity() (Entity, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return Entity{}, err
	}
	return NewEntity(raw)
}

// Entity сериализует карточку в непрозрачную запись
func (c Card) Entity() (Entity, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return Entity{}, err
	}
	return NewEntity(raw)
}
