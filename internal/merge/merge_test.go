package merge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/boardsync/internal/models"
)

func entity(t *testing.T, id string, updatedAt int64, title string) models.Entity {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"id":        id,
		"updatedAt": updatedAt,
		"title":     title,
	})
	require.NoError(t, err)
	e, err := models.NewEntity(raw)
	require.NoError(t, err)
	return e
}

func titleOf(t *testing.T, e models.Entity) string {
	t.Helper()
	var probe struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(e.Raw, &probe))
	return probe.Title
}

func snapshot(timestamp int64, boards []models.Entity, cards map[string][]models.Entity) models.Snapshot {
	if boards == nil {
		boards = []models.Entity{}
	}
	if cards == nil {
		cards = map[string][]models.Entity{}
	}
	return models.Snapshot{
		Timestamp: timestamp,
		Data:      models.Workspace{Boards: boards, Cards: cards},
	}
}

func boardsByID(result models.Snapshot) map[string]models.Entity {
	byID := make(map[string]models.Entity)
	for _, b := range result.Data.Boards {
		byID[b.ID] = b
	}
	return byID
}

func TestBootstrapPassthrough(t *testing.T) {
	local := snapshot(1000, []models.Entity{entity(t, "1", 1000, "Local")}, nil)
	empty := models.Snapshot{Timestamp: 0, Data: models.EmptyWorkspace()}

	merged := Snapshots(local, empty, 5000)

	// Пустой sentinel возвращает локальный snapshot без изменений,
	// включая исходный timestamp
	assert.Equal(t, local, merged)
}

func TestNewerRemoteWins(t *testing.T) {
	// local board {id:"1", updatedAt:t1}, remote {id:"1", updatedAt:t1+1000, title:"X"}
	local := snapshot(2000, []models.Entity{entity(t, "1", 1000, "old")}, nil)
	remote := snapshot(1500, []models.Entity{entity(t, "1", 2000, "X")}, nil)

	merged := Snapshots(local, remote, 5000)

	require.Len(t, merged.Data.Boards, 1)
	assert.Equal(t, "X", titleOf(t, merged.Data.Boards[0]))
	assert.Equal(t, int64(5000), merged.Timestamp)
}

func TestNewerLocalWins(t *testing.T) {
	local := snapshot(2000, []models.Entity{entity(t, "1", 3000, "mine")}, nil)
	remote := snapshot(1500, []models.Entity{entity(t, "1", 2000, "theirs")}, nil)

	merged := Snapshots(local, remote, 5000)

	require.Len(t, merged.Data.Boards, 1)
	assert.Equal(t, "mine", titleOf(t, merged.Data.Boards[0]))
}

func TestTieFavorsLocal(t *testing.T) {
	local := snapshot(2000, []models.Entity{entity(t, "1", 1000, "local copy")}, nil)
	remote := snapshot(1500, []models.Entity{entity(t, "1", 1000, "remote copy")}, nil)

	merged := Snapshots(local, remote, 5000)

	require.Len(t, merged.Data.Boards, 1)
	assert.Equal(t, "local copy", titleOf(t, merged.Data.Boards[0]))
}

func TestDisjointUnion(t *testing.T) {
	local := snapshot(2000, []models.Entity{entity(t, "1", 1000, "a"), entity(t, "2", 1000, "b")}, nil)
	remote := snapshot(1500, []models.Entity{entity(t, "3", 1000, "c")}, nil)

	merged := Snapshots(local, remote, 5000)

	byID := boardsByID(merged)
	assert.Len(t, byID, 3)
	assert.Contains(t, byID, "1")
	assert.Contains(t, byID, "2")
	assert.Contains(t, byID, "3")
}

func TestIdempotence(t *testing.T) {
	local := snapshot(2000, []models.Entity{entity(t, "1", 1000, "a"), entity(t, "2", 1500, "b")},
		map[string][]models.Entity{"1": {entity(t, "c1", 900, "card")}})
	remote := snapshot(1500, []models.Entity{entity(t, "2", 2000, "b2"), entity(t, "3", 500, "c")},
		map[string][]models.Entity{"3": {entity(t, "c2", 800, "card2")}})

	once := Snapshots(local, remote, 5000)
	twice := Snapshots(once, once, 6000)

	assert.Equal(t, once.Data, twice.Data)
}

func TestCardsMergedPerBoard(t *testing.T) {
	local := snapshot(2000, []models.Entity{entity(t, "1", 1000, "board")},
		map[string][]models.Entity{"1": {entity(t, "c1", 1000, "local card"), entity(t, "c2", 500, "only local")}})
	remote := snapshot(1500, []models.Entity{entity(t, "1", 1000, "board")},
		map[string][]models.Entity{"1": {entity(t, "c1", 2000, "remote card"), entity(t, "c3", 700, "only remote")}})

	merged := Snapshots(local, remote, 5000)

	cards := merged.Data.Cards["1"]
	require.Len(t, cards, 3)
	byID := make(map[string]models.Entity)
	for _, c := range cards {
		byID[c.ID] = c
	}
	assert.Equal(t, "remote card", titleOf(t, byID["c1"]))
	assert.Equal(t, "only local", titleOf(t, byID["c2"]))
	assert.Equal(t, "only remote", titleOf(t, byID["c3"]))
}

func TestOrphanedCardCollectionsKept(t *testing.T) {
	// Карточки доски, которой нет в boards, merge не вычищает
	local := snapshot(2000, []models.Entity{},
		map[string][]models.Entity{"ghost": {entity(t, "c1", 1000, "orphan")}})
	remote := snapshot(1500, []models.Entity{entity(t, "1", 1000, "board")}, nil)

	merged := Snapshots(local, remote, 5000)

	assert.Contains(t, merged.Data.Cards, "ghost")
}

func TestEmptyIDSkipped(t *testing.T) {
	noID, err := models.NewEntity([]byte(`{"updatedAt":1000,"title":"anonymous"}`))
	require.NoError(t, err)

	local := snapshot(2000, []models.Entity{noID, entity(t, "1", 1000, "real")}, nil)
	remote := snapshot(1500, nil, nil)

	merged := Snapshots(local, remote, 5000)

	require.Len(t, merged.Data.Boards, 1)
	assert.Equal(t, "1", merged.Data.Boards[0].ID)
}

func TestMissingUpdatedAtIsOldest(t *testing.T) {
	stale, err := models.NewEntity([]byte(`{"id":"1","title":"no timestamp"}`))
	require.NoError(t, err)

	local := snapshot(2000, []models.Entity{stale}, nil)
	remote := snapshot(1500, []models.Entity{entity(t, "1", 1, "dated")}, nil)

	merged := Snapshots(local, remote, 5000)

	require.Len(t, merged.Data.Boards, 1)
	assert.Equal(t, "dated", titleOf(t, merged.Data.Boards[0]))
}

func TestSettingsMerge(t *testing.T) {
	mkSettings := func(t *testing.T, updatedAt int64, theme string) *models.Settings {
		t.Helper()
		raw, err := json.Marshal(map[string]any{"updatedAt": updatedAt, "theme": theme})
		require.NoError(t, err)
		var s models.Settings
		require.NoError(t, json.Unmarshal(raw, &s))
		return &s
	}

	t.Run("absent local yields remote", func(t *testing.T) {
		local := snapshot(2000, nil, nil)
		remote := snapshot(1500, nil, nil)
		remote.Data.Settings = mkSettings(t, 1000, "dark")

		merged := Snapshots(local, remote, 5000)
		require.NotNil(t, merged.Data.Settings)
		assert.Equal(t, int64(1000), merged.Data.Settings.UpdatedAt)
	})

	t.Run("newer remote wins", func(t *testing.T) {
		local := snapshot(2000, nil, nil)
		local.Data.Settings = mkSettings(t, 1000, "light")
		remote := snapshot(1500, nil, nil)
		remote.Data.Settings = mkSettings(t, 2000, "dark")

		merged := Snapshots(local, remote, 5000)
		assert.Equal(t, int64(2000), merged.Data.Settings.UpdatedAt)
	})

	t.Run("tie keeps local", func(t *testing.T) {
		localSettings := mkSettings(t, 1000, "light")
		local := snapshot(2000, nil, nil)
		local.Data.Settings = localSettings
		remote := snapshot(1500, nil, nil)
		remote.Data.Settings = mkSettings(t, 1000, "dark")

		merged := Snapshots(local, remote, 5000)
		assert.JSONEq(t, string(localSettings.Raw), string(merged.Data.Settings.Raw))
	})
}

func TestInputsNotMutated(t *testing.T) {
	localEntity := entity(t, "1", 1000, "local")
	local := snapshot(2000, []models.Entity{localEntity}, nil)
	remote := snapshot(1500, []models.Entity{entity(t, "1", 2000, "remote")}, nil)

	merged := Snapshots(local, remote, 5000)

	// Мутация результата не задевает входные snapshot
	merged.Data.Boards[0].Raw[2] = 'Z'
	assert.Equal(t, "local", titleOf(t, local.Data.Boards[0]))
	assert.Equal(t, "remote", titleOf(t, remote.Data.Boards[0]))
}
