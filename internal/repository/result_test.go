package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/testing/suite"
)

func TestResultRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage)

	// Given: a finished game result
	result := &entity.GameResult{
		ID:         "123",
		Creator:    "alice",
		Winner:     "alice",
		Loser:      "bob",
		FinishedAt: time.Now().UTC().Truncate(time.Second),
	}

	// When: Save is called
	err := resultRepo.Save(ctx, result)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestResultRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: a stored game result
		result := &entity.GameResult{
			ID:         "123",
			Creator:    "alice",
			Winner:     "alice",
			Loser:      "bob",
			FinishedAt: time.Now().UTC().Truncate(time.Second),
		}

		err := resultRepo.Save(ctx, result)
		require.NoError(t, err)

		// When: GetByID is called with the existing ID
		retrieved, err := resultRepo.GetByID(ctx, result.ID)

		// Then: the retrieved result should match the saved one
		require.NoError(t, err)
		require.Equal(t, result.ID, retrieved.ID)
		require.Equal(t, result.Winner, retrieved.Winner)
		require.Equal(t, result.Loser, retrieved.Loser)
		require.Equal(t, result.Creator, retrieved.Creator)
		require.True(t, result.FinishedAt.Equal(retrieved.FinishedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: GetByID is called with a non-existent ID
		retrieved, err := resultRepo.GetByID(ctx, "9999999")

		// Then: an ErrResultNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrResultNotFound, err)
		assert.Empty(t, retrieved.ID)
		assert.Empty(t, retrieved.Winner)
	})
}
