package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistara-apps/8e0295e7-5825-4b9e-8683-d1e12a96cb5f/internal/game"
)

func testRoster() []game.Fighter {
	return []game.Fighter{
		{ID: "1", Name: "Cyber Warrior Alpha", Owner: "0xuser1",
			Attributes:  []game.Attribute{{TraitType: game.TraitRarity, Value: "Epic"}},
			BattleStats: game.BattleStats{Attack: 85, Defense: 70, Speed: 90, Health: 100, Level: 5, Experience: 250}},
		{ID: "2", Name: "Neon Guardian", Owner: "0xuser2",
			Attributes:  []game.Attribute{{TraitType: game.TraitRarity, Value: "Rare"}},
			BattleStats: game.BattleStats{Attack: 65, Defense: 95, Speed: 60, Health: 100, Level: 4, Experience: 180}},
	}
}

func openTestRepo(t *testing.T) (Repository, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "arena.db")
	db, err := OpenAndMigrate(dsn, testRoster())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewSQLiteRepository(db), dsn
}

func strptr(s string) *string { return &s }

func TestRosterSeedAndLookup(t *testing.T) {
	repo, _ := openTestRepo(t)

	fighters, err := repo.GetFighters()
	require.NoError(t, err)
	require.Len(t, fighters, 2)
	assert.Equal(t, "1", fighters[0].ID)
	assert.Equal(t, game.RarityEpic, fighters[0].Rarity())
	assert.Equal(t, 85, fighters[0].BattleStats.Attack)

	f, err := repo.GetFighterByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Neon Guardian", f.Name)

	_, err = repo.GetFighterByID("404")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRosterResyncOverwritesStats(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "arena.db")
	_, err := OpenAndMigrate(dsn, testRoster())
	require.NoError(t, err)

	changed := testRoster()
	changed[0].BattleStats.Attack = 99
	db, err := OpenAndMigrate(dsn, changed)
	require.NoError(t, err)

	f, err := NewSQLiteRepository(db).GetFighterByID("1")
	require.NoError(t, err)
	assert.Equal(t, 99, f.BattleStats.Attack)
}

func TestBattlePersistence(t *testing.T) {
	repo, _ := openTestRepo(t)

	b := &game.Battle{
		BattleID:         "b-1",
		Player1FighterID: "1",
		Player2FighterID: "2",
		WinnerFighterID:  strptr("1"),
		LoserFighterID:   strptr("2"),
		PlayerWallet:     "0xabc",
		PaymentTxHash:    "0xtx1",
		Result:           game.ResultWin,
		Status:           game.BattleStatusCompleted,
		BattleLog: []game.ActionRecord{
			{Turn: 1, Attacker: "1", Defender: "2", Action: game.ActionAttack, Damage: 53, RemainingHealth: 47},
		},
		Timestamp: 1000,
	}
	require.NoError(t, repo.ApplyBattleResult(b, "Alice", game.ProfileDelta{Wins: 1, Experience: 50}))

	got, err := repo.GetBattleByBattleID("b-1")
	require.NoError(t, err)
	assert.Equal(t, b.BattleLog, got.BattleLog)
	require.NotNil(t, got.WinnerFighterID)
	assert.Equal(t, "1", *got.WinnerFighterID)

	byTx, err := repo.FindBattleByPaymentTx("0xtx1")
	require.NoError(t, err)
	assert.Equal(t, "b-1", byTx.BattleID)

	_, err = repo.FindBattleByPaymentTx("")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetBattleByBattleID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	u, err := repo.GetUserByWallet("0xabc")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.PlayerName)
	assert.Equal(t, 1, u.Wins)
	assert.Equal(t, 1, u.TotalBattles)
	assert.Equal(t, 50, u.Experience)

	draw := &game.Battle{BattleID: "b-2", Player1FighterID: "1", Player2FighterID: "2",
		PlayerWallet: "0xabc", Result: game.ResultDraw, Status: game.BattleStatusCompleted, Timestamp: 2000}
	require.NoError(t, repo.ApplyBattleResult(draw, "", game.ProfileDelta{Draws: 1, Experience: 10}))

	history, err := repo.ListBattlesByWallet("0xabc", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "b-2", history[0].BattleID)
	assert.Nil(t, history[0].WinnerFighterID)

	u, err = repo.GetUserByWallet("0xabc")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.PlayerName, "empty name keeps the stored one")
	assert.Equal(t, 2, u.TotalBattles)
	assert.Equal(t, 1, u.Draws)
	assert.Equal(t, 60, u.Experience)
}

func TestCreateBattleLeavesProfileAlone(t *testing.T) {
	repo, _ := openTestRepo(t)

	for i, id := range []string{"c-1", "c-2", "c-3"} {
		require.NoError(t, repo.CreateBattle(&game.Battle{
			BattleID: id, Player1FighterID: "2", Player2FighterID: "1",
			PlayerWallet: "0xdef", Result: game.ResultWin, Status: game.BattleStatusCompleted,
			WinnerFighterID: strptr("1"), LoserFighterID: strptr("2"),
			Timestamp: int64(100 * (i + 1)),
		}))
	}
	err := repo.CreateBattle(&game.Battle{BattleID: "c-1", PlayerWallet: "0xdef"})
	assert.Error(t, err, "battle ids are unique")

	history, err := repo.ListBattlesByWallet("0xdef", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "c-3", history[0].BattleID)
	assert.Equal(t, "c-2", history[1].BattleID)
	assert.Equal(t, game.ResultLoss, history[0].PlayerResult())

	u, err := repo.GetUserByWallet("0xdef")
	require.NoError(t, err)
	assert.Equal(t, "0xdef", u.WalletAddress)
	assert.Zero(t, u.TotalBattles)
}

func TestUsersAndLeaderboard(t *testing.T) {
	repo, _ := openTestRepo(t)

	u, err := repo.GetUserByWallet("0xnew")
	require.NoError(t, err)
	assert.Equal(t, "0xnew", u.WalletAddress)
	assert.Zero(t, u.ID)

	require.NoError(t, repo.UpsertUser("0xnew", "Newbie"))
	require.NoError(t, repo.UpsertUser("0xnew", "Renamed"))
	u, err = repo.GetUserByWallet("0xnew")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.PlayerName)

	require.NoError(t, repo.SaveUser(&game.User{WalletAddress: "0xa", PlayerName: "A", Wins: 3, TotalBattles: 4, Experience: 160}))
	require.NoError(t, repo.SaveUser(&game.User{WalletAddress: "0xb", PlayerName: "B", Wins: 3, TotalBattles: 3, Experience: 150}))
	require.NoError(t, repo.SaveUser(&game.User{WalletAddress: "0xc", PlayerName: "C", Wins: 5, TotalBattles: 5, Experience: 250}))

	top, err := repo.GetTopPlayers(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "C", top[0].PlayerName)
	assert.Equal(t, "A", top[1].PlayerName)

	all, err := repo.GetTopPlayers(0)
	require.NoError(t, err)
	assert.Len(t, all, 3, "players without battles are not ranked")
}
