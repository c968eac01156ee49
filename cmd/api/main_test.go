package main

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/pkg/config"
	"github.com/jhoicas/picking-api/pkg/logger"
)

func TestOpenStorage_MemoriaValidaCatalogo(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory}}
	st, err := openStorage(ctx, cfg, logger.New(logger.Config{Env: "production", Output: io.Discard}))
	require.NoError(t, err)
	defer st.close()
	require.NotNil(t, st.products)

	uc := inventory.NewMoveUseCase(inventory.MoveDeps{
		TxRunner: st.txRunner,
		Moves:    st.moves,
		Products: st.products,
		Logger:   zerolog.Nop(),
	})
	confirm := func(item string) error {
		move, err := uc.CreateMove(ctx, inventory.CreateMoveInput{
			DocType:   "PO",
			DocNumber: "PO-" + item,
			Lines:     []entity.LineInput{{ItemCode: item, Qty: 3}},
			Actor:     "operador-01",
		})
		require.NoError(t, err)
		_, err = uc.ConfirmMove(ctx, inventory.ConfirmMoveInput{
			MoveID:        move.ID,
			Confirmations: []inventory.Confirmation{{ItemCode: item, Qty: 3, LocationTo: entity.DefaultLocation}},
			Actor:         "operador-01",
		})
		return err
	}

	err = confirm("NO-EXISTE")
	require.Error(t, err)
	assert.Equal(t, domain.CodeProductNotFound, domain.CodeOf(err))

	// Alta por el mismo catálogo que expone PUT /api/products.
	require.NoError(t, st.catalog.Upsert(ctx, entity.Product{ItemCode: "A-1", ItemName: "Tornillo"}))
	require.NoError(t, confirm("A-1"))

	e, err := st.stock.Get(ctx, "A-1", entity.DefaultLocation)
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.Qty)
}
