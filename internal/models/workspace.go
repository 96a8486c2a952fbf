package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Entity представляет одну сущность workspace (доску или карточку) как
// непрозрачную JSON запись. Merge engine сравнивает сущности только по
// ID и UpdatedAt; все остальные поля сохраняются дословно в Raw и
// никогда не мержатся пополено.
type Entity struct {
	ID        string          `json:"-"` // уникальный идентификатор сущности
	UpdatedAt int64           `json:"-"` // время последнего обновления, мс epoch (0 = неизвестно)
	Raw       json.RawMessage `json:"-"` // исходный JSON сущности, байт в байт
}

// entityProbe извлекает id и updatedAt, не трогая остальной payload
type entityProbe struct {
	ID        any        `json:"id"`
	UpdatedAt UpdateTime `json:"updatedAt"`
}

// UnmarshalJSON сохраняет исходные байты и извлекает id/updatedAt.
// id принимается строкой или числом (исторические данные содержат оба
// варианта), updatedAt — числом мс или строкой даты.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var probe entityProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("failed to decode entity: %w", err)
	}

	switch id := probe.ID.(type) {
	case string:
		e.ID = id
	case float64:
		e.ID = strconv.FormatFloat(id, 'f', -1, 64)
	case nil:
		e.ID = ""
	default:
		return fmt.Errorf("unsupported entity id type %T", probe.ID)
	}

	e.UpdatedAt = int64(probe.UpdatedAt)

	// Копируем, т.к. encoding/json может переиспользовать буфер
	e.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON возвращает исходный payload без изменений
func (e Entity) MarshalJSON() ([]byte, error) {
	if len(e.Raw) == 0 {
		return []byte("null"), nil
	}
	return e.Raw, nil
}

// Clone создает независимую копию сущности
func (e Entity) Clone() Entity {
	return Entity{
		ID:        e.ID,
		UpdatedAt: e.UpdatedAt,
		Raw:       append(json.RawMessage(nil), e.Raw...),
	}
}

// NewEntity разбирает JSON сущности. Ошибка только при синтаксически
// некорректном JSON; отсутствующие id/updatedAt допустимы.
func NewEntity(raw []byte) (Entity, error) {
	var e Entity
	if err := json.Unmarshal(raw, &e); err != nil {
		return Entity{}, err
	}
	return e, nil
}

// Settings представляет настройки workspace (имя, цвет фона и т.п.) —
// такой же непрозрачный payload, как Entity, но без id: настройки
// существуют в единственном экземпляре.
type Settings struct {
	UpdatedAt int64           `json:"-"`
	Raw       json.RawMessage `json:"-"`
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	var probe struct {
		UpdatedAt UpdateTime `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("failed to decode workspace settings: %w", err)
	}
	s.UpdatedAt = int64(probe.UpdatedAt)
	s.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (s Settings) MarshalJSON() ([]byte, error) {
	if len(s.Raw) == 0 {
		return []byte("null"), nil
	}
	return s.Raw, nil
}

// Clone создает независимую копию настроек
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	return &Settings{
		UpdatedAt: s.UpdatedAt,
		Raw:       append(json.RawMessage(nil), s.Raw...),
	}
}

// Workspace представляет полное содержимое workspace: настройки, список
// досок и карточки, сгруппированные по id доски. Порядок досок и
// карточек сохраняется от производителя, но семантики не несет.
type Workspace struct {
	Settings *Settings           `json:"workspaceSettings"`
	Boards   []Entity            `json:"boards"`
	Cards    map[string][]Entity `json:"cards"`
}

// EmptyWorkspace возвращает workspace без данных с инициализированными
// коллекциями (JSON: boards=[], cards={})
func EmptyWorkspace() Workspace {
	return Workspace{
		Boards: []Entity{},
		Cards:  map[string][]Entity{},
	}
}

// Snapshot представляет единицу обмена с удаленным хранилищем: версия
// плюс содержимое workspace. Timestamp в мс epoch; значение 0 — sentinel
// "удаленных данных еще нет" (bootstrap путь).
type Snapshot struct {
	Timestamp int64     `json:"timestamp"`
	Data      Workspace `json:"data"`
}

// IsEmpty сообщает, является ли snapshot пустым sentinel
func (s Snapshot) IsEmpty() bool {
	return s.Timestamp == 0
}

// UpdateTime разбирает поле updatedAt, которое в исторических данных
// встречается числом миллисекунд, строкой RFC3339 или отсутствует.
// Неразбираемое значение трактуется как 0 (самое старое).
type UpdateTime int64

func (t *UpdateTime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*t = 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*t = UpdateTime(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		*t = 0
		return nil
	}

	*t = UpdateTime(ParseUpdateTime(str))
	return nil
}

// ParseUpdateTime разбирает строковое значение updatedAt в мс epoch.
// Принимает целые миллисекунды и RFC3339/RFC3339Nano; иначе 0.
func ParseUpdateTime(value string) int64 {
	if value == "" {
		return 0
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ms
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UnixMilli()
		}
	}
	return 0
}

// NowMillis возвращает текущее время в мс epoch — единица измерения
// всех timestamp в протоколе синхронизации
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
