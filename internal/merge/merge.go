package merge

import (
	"github.com/iudanet/boardsync/internal/models"
)

// Merge engine: чистая функция без I/O и побочных эффектов, сливающая
// локальную и удаленную копии workspace по правилу Last-Write-Wins на
// уровне отдельных сущностей (досок и карточек), а не документа целиком.
//
// Сознательные ограничения схемы (это не 3-way merge и не vector clock):
//   - сущность, удаленная на одной стороне и не тронутая на другой,
//     воскресает после merge — удаление невидимо для LWW-по-id;
//   - коллекции карточек досок, которых больше нет в boards, не
//     вычищаются.
// Оба поведения зафиксированы как приемлемые для двухписательного
// сценария casual sync.

// Snapshots сливает локальный и удаленный snapshot. now — момент
// завершения merge в мс epoch; он становится версией результата.
//
// Быстрый путь bootstrap: удаленный sentinel (timestamp == 0) означает,
// что удаленных данных еще нет — результатом является локальный snapshot
// без изменений (записать его на сервер обязан оркестратор).
func Snapshots(local, remote models.Snapshot, now int64) models.Snapshot {
	if remote.IsEmpty() {
		return local
	}

	return models.Snapshot{
		Timestamp: now,
		Data: models.Workspace{
			Settings: settings(local.Data.Settings, remote.Data.Settings),
			Boards:   entities(local.Data.Boards, remote.Data.Boards),
			Cards:    cardsMap(local.Data.Cards, remote.Data.Cards),
		},
	}
}

// entities сливает две коллекции сущностей по id. Локальные сущности
// складываются первыми; более поздняя сущность с уже виденным id
// замещает сохраненную только при строго большем updatedAt — равенство
// оставляет локальную копию. Отсутствующий или неразбираемый updatedAt
// равен 0 (самое старое). Порядок результата — порядок первого
// появления id, значения не несет.
func entities(local, remote []models.Entity) []models.Entity {
	type slot struct {
		entity models.Entity
		ts     int64
	}

	byID := make(map[string]int)
	var slots []slot

	fold := func(items []models.Entity) {
		for _, item := range items {
			if item.ID == "" {
				continue
			}
			idx, seen := byID[item.ID]
			if !seen {
				byID[item.ID] = len(slots)
				slots = append(slots, slot{entity: item.Clone(), ts: item.UpdatedAt})
				continue
			}
			if item.UpdatedAt > slots[idx].ts {
				slots[idx] = slot{entity: item.Clone(), ts: item.UpdatedAt}
			}
		}
	}

	fold(local)
	fold(remote)

	result := make([]models.Entity, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.entity)
	}
	return result
}

// cardsMap сливает карточки для каждого id доски, встречающегося хотя бы
// на одной стороне. Ключи-сироты (доска удалена, карточки остались)
// сохраняются — движок не занимается их гигиеной.
func cardsMap(local, remote map[string][]models.Entity) map[string][]models.Entity {
	merged := make(map[string][]models.Entity, len(local)+len(remote))
	for boardID, cards := range local {
		merged[boardID] = entities(cards, remote[boardID])
	}
	for boardID, cards := range remote {
		if _, done := merged[boardID]; done {
			continue
		}
		merged[boardID] = entities(nil, cards)
	}
	return merged
}

// settings выбирает настройки workspace: отсутствующая сторона уступает
// другой, при обеих присутствующих побеждает строго больший updatedAt,
// равенство — за локальной (зеркально правилу для сущностей)
func settings(local, remote *models.Settings) *models.Settings {
	if local == nil {
		return remote.Clone()
	}
	if remote == nil {
		return local.Clone()
	}
	if remote.UpdatedAt > local.UpdatedAt {
		return remote.Clone()
	}
	return local.Clone()
}
