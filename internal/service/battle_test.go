package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarros/particle-clash/internal/cache"
	"github.com/mbarros/particle-clash/internal/engine"
	"github.com/mbarros/particle-clash/internal/game"
)

type mockRepository struct {
	creatures map[uint]*game.Creature
	records   []*game.BattleRecord
	nextID    uint

	statsUpdates int
}

func newMockRepository() *mockRepository {
	return &mockRepository{creatures: map[uint]*game.Creature{}, nextID: 1}
}

func (m *mockRepository) CreateCreature(c *game.Creature) error {
	c.ID = m.nextID
	m.nextID++
	m.creatures[c.ID] = c
	return nil
}

func (m *mockRepository) GetCreatures() ([]game.Creature, error) {
	var out []game.Creature
	for _, c := range m.creatures {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockRepository) GetCreatureByID(id uint) (*game.Creature, error) {
	c, ok := m.creatures[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (m *mockRepository) GetCreatureByName(name string) (*game.Creature, error) {
	for _, c := range m.creatures {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *mockRepository) UpdateCreature(c *game.Creature) error {
	m.creatures[c.ID] = c
	return nil
}

func (m *mockRepository) CreateBattleRecord(r *game.BattleRecord) error {
	r.ID = m.nextID
	m.nextID++
	m.records = append(m.records, r)
	return nil
}

func (m *mockRepository) GetBattleRecordByID(id uint) (*game.BattleRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *mockRepository) GetBattleRecords(limit int) ([]game.BattleRecord, error) {
	var out []game.BattleRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, *m.records[i])
	}
	return out, nil
}

func (m *mockRepository) GetBattleRecordsByContentHash(hash string) ([]game.BattleRecord, error) {
	var out []game.BattleRecord
	for _, r := range m.records {
		if r.ContentHash == hash {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateStatsOnBattleEnd(a, b *game.Creature, winner game.Winner) error {
	m.statsUpdates++
	a.BattlesFought++
	b.BattlesFought++
	switch winner {
	case game.WinnerA:
		a.Wins++
	case game.WinnerB:
		b.Wins++
	case game.WinnerDraw:
		a.Draws++
		b.Draws++
	}
	return nil
}

func (m *mockRepository) GetTopCreatures(limit int) ([]game.Creature, error) {
	return m.GetCreatures()
}

func newTestService(repo *mockRepository) *BattleService {
	reg := engine.NewRegistry()
	eng := engine.New(reg, engine.DefaultSelectorConfig(), engine.DefaultScoreWeights())
	return NewBattleService(repo, eng, reg.Catalog(), cache.New())
}

func snapshotWithRoles(name string, offense, defense, speed, arcane, vitality int) *game.Snapshot {
	s := &game.Snapshot{Name: name}
	s.Roles[game.RoleOffense] = offense
	s.Roles[game.RoleDefense] = defense
	s.Roles[game.RoleSpeed] = speed
	s.Roles[game.RoleArcane] = arcane
	s.Roles[game.RoleVitality] = vitality
	return s
}

func TestCreateCreature_EnforcesParticleBudget(t *testing.T) {
	svc := newTestService(newMockRepository())

	_, err := svc.CreateCreature(snapshotWithRoles("short", 100, 100, 100, 100, 99))
	assert.ErrorIs(t, err, ErrInvalidParticleTotal)

	_, err = svc.CreateCreature(snapshotWithRoles("over", 100, 100, 100, 100, 101))
	assert.ErrorIs(t, err, ErrInvalidParticleTotal)
}

func TestCreateCreature_RejectsNegativeRoles(t *testing.T) {
	svc := newTestService(newMockRepository())
	_, err := svc.CreateCreature(snapshotWithRoles("neg", -1, 101, 100, 100, 200))
	assert.ErrorIs(t, err, engine.ErrInvalidSnapshot)
}

func TestCreateCreature_PersistsValidSnapshot(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	c, err := svc.CreateCreature(snapshotWithRoles("balanced", 100, 100, 100, 100, 100))
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "balanced", c.Name)
	assert.Len(t, repo.creatures, 1)
}

func TestResolveByID_RejectsSelfBattle(t *testing.T) {
	svc := newTestService(newMockRepository())
	_, _, err := svc.ResolveByID(7, 7)
	assert.ErrorIs(t, err, ErrSelfBattle)
}

func TestResolveByID_UnknownCreature(t *testing.T) {
	svc := newTestService(newMockRepository())
	_, _, err := svc.ResolveByID(1, 2)
	assert.ErrorIs(t, err, ErrCreatureNotFound)
}

func TestResolveByID_RecordsOutcomeAndStats(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	a, err := svc.CreateCreature(snapshotWithRoles("bruiser", 300, 50, 50, 50, 50))
	require.NoError(t, err)
	b, err := svc.CreateCreature(snapshotWithRoles("turtle", 50, 300, 50, 50, 50))
	require.NoError(t, err)

	rec, out, err := svc.ResolveByID(a.ID, b.ID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, out)

	assert.Equal(t, a.ID, rec.CreatureAID)
	assert.Equal(t, b.ID, rec.CreatureBID)
	assert.NotEmpty(t, rec.ContentHash)
	assert.Equal(t, out.StrategyNameA, rec.StrategyA)
	assert.Equal(t, out.StrategyNameB, rec.StrategyB)
	assert.Equal(t, string(out.Winner), rec.Winner)

	assert.Equal(t, 1, repo.statsUpdates)
	assert.Equal(t, 1, a.BattlesFought)
	assert.Equal(t, 1, b.BattlesFought)
	require.Len(t, repo.records, 1)
}

func TestResolveByID_RematchSharesContentHash(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	a, err := svc.CreateCreature(snapshotWithRoles("bruiser", 300, 50, 50, 50, 50))
	require.NoError(t, err)
	b, err := svc.CreateCreature(snapshotWithRoles("turtle", 50, 300, 50, 50, 50))
	require.NoError(t, err)

	first, _, err := svc.ResolveByID(a.ID, b.ID)
	require.NoError(t, err)
	second, _, err := svc.ResolveByID(a.ID, b.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ContentHash, second.ContentHash)
	matches, err := repo.GetBattleRecordsByContentHash(first.ContentHash)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestPreview_ReturnsCachedOutcome(t *testing.T) {
	svc := newTestService(newMockRepository())
	snapA := snapshotWithRoles("left", 200, 100, 100, 50, 50)
	snapB := snapshotWithRoles("right", 100, 200, 50, 100, 50)

	out1, key1, err := svc.Preview(snapA, snapB)
	require.NoError(t, err)
	out2, key2, err := svc.Preview(snapA, snapB)
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
	assert.Same(t, out1, out2)
}
