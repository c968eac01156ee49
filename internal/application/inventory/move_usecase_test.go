package inventory_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
	"github.com/jhoicas/picking-api/internal/infrastructure/memory"
)

var spanRecorder = tracetest.NewSpanRecorder()

func TestMain(m *testing.M) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))
	os.Exit(m.Run())
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const actor = "operador-01"

var fixedNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []inventory.MoveEvent
	err    error
}

func (p *recordingPublisher) PublishMoveEvent(_ context.Context, e inventory.MoveEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Events() []inventory.MoveEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]inventory.MoveEvent(nil), p.events...)
}

type observation struct {
	docType entity.DocType
	outcome string
}

type recordingObserver struct {
	mu       sync.Mutex
	confirms []observation
	deltas   []int64
}

func (o *recordingObserver) ObserveConfirm(docType entity.DocType, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.confirms = append(o.confirms, observation{docType: docType, outcome: outcome})
}

func (o *recordingObserver) ObserveStockAdjustment(_ entity.DocType, delta int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deltas = append(o.deltas, delta)
}

type harness struct {
	uc        *inventory.MoveUseCase
	store     *memory.Store
	publisher *recordingPublisher
	observer  *recordingObserver
}

// newHarness arma el caso de uso sobre el store en memoria. Si se pasan productos, se valida el catálogo.
func newHarness(t *testing.T, products ...entity.Product) *harness {
	t.Helper()
	h := &harness{
		store:     memory.NewStore(),
		publisher: &recordingPublisher{},
		observer:  &recordingObserver{},
	}
	deps := inventory.MoveDeps{
		TxRunner:  h.store,
		Moves:     h.store.Moves(),
		Publisher: h.publisher,
		Observer:  h.observer,
		Logger:    zerolog.Nop(),
		Clock:     func() time.Time { return fixedNow },
	}
	if len(products) > 0 {
		h.store.SeedProducts(products...)
		deps.Products = h.store.Products()
	}
	h.uc = inventory.NewMoveUseCase(deps)
	return h
}

func (h *harness) create(t *testing.T, docType, docNumber string, lines ...entity.LineInput) *entity.Move {
	t.Helper()
	move, err := h.uc.CreateMove(context.Background(), inventory.CreateMoveInput{
		DocType:   docType,
		DocNumber: docNumber,
		Lines:     lines,
		Actor:     actor,
	})
	require.NoError(t, err)
	return move
}

func (h *harness) confirm(moveID string, confirmations ...inventory.Confirmation) (*entity.Move, error) {
	return h.uc.ConfirmMove(context.Background(), inventory.ConfirmMoveInput{
		MoveID:        moveID,
		Confirmations: confirmations,
		Actor:         actor,
	})
}

func (h *harness) stock(t *testing.T, item, location string) int64 {
	t.Helper()
	e, err := h.store.Stock().Get(context.Background(), item, location)
	require.NoError(t, err)
	return e.Qty
}

func (h *harness) audit(t *testing.T, moveID string) []*entity.Audit {
	t.Helper()
	entries, err := h.store.Audit().List(context.Background(), repository.AuditFilter{EntityID: moveID})
	require.NoError(t, err)
	return entries
}

func ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Recepción parcial y completa (PO)
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmMove_RecepcionParcialYCompleta(t *testing.T) {
	h := newHarness(t)
	move := h.create(t, "PO", "PO-1", entity.LineInput{ItemCode: "A", Qty: 10, LocationTo: "DOCK"})
	assert.Equal(t, entity.MoveStatusDraft, move.Status)
	assert.Equal(t, int64(0), move.Lines[0].QtyConfirmed)
	assert.Equal(t, entity.DefaultLocation, move.Lines[0].LocationFrom)

	got, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 10, QtyConfirmed: ptr(4), LocationTo: "DOCK"})
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusPending, got.Status)
	assert.Equal(t, int64(4), got.Lines[0].QtyConfirmed)
	assert.Nil(t, got.ApprovedBy)
	assert.Equal(t, int64(4), h.stock(t, "A", "DOCK"))

	got, err = h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 10, QtyConfirmed: ptr(6), LocationTo: "DOCK"})
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusApproved, got.Status)
	assert.Equal(t, int64(10), got.Lines[0].QtyConfirmed)
	require.NotNil(t, got.ApprovedBy)
	assert.Equal(t, actor, *got.ApprovedBy)
	assert.Equal(t, int64(10), h.stock(t, "A", "DOCK"))

	// Movimiento aprobado: terminal, sin cambios.
	_, err = h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 1, LocationTo: "DOCK"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeAlreadyApproved, domain.CodeOf(err))
	assert.Equal(t, int64(10), h.stock(t, "A", "DOCK"))
	assert.Len(t, h.audit(t, move.ID), 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmMove_TrasladoSinStockNoDejaRastro(t *testing.T) {
	h := newHarness(t)
	h.store.SeedStock(entity.StockEntry{ItemCode: "A", Location: "A1", Qty: 3})
	move := h.create(t, "TR", "TR-1", entity.LineInput{ItemCode: "A", Qty: 5, LocationFrom: "A1", LocationTo: "B1"})

	_, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 5, LocationFrom: "A1", LocationTo: "B1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "A1")

	assert.Equal(t, int64(3), h.stock(t, "A", "A1"))
	assert.Equal(t, int64(0), h.stock(t, "A", "B1"))

	current, err := h.uc.GetMove(context.Background(), move.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusDraft, current.Status)
	assert.Equal(t, int64(0), current.Lines[0].QtyConfirmed)
	assert.Len(t, h.audit(t, move.ID), 1, "solo la auditoría de creación")
}

func TestConfirmMove_LoteFallaCompleto(t *testing.T) {
	h := newHarness(t)
	move := h.create(t, "PO", "PO-2",
		entity.LineInput{ItemCode: "A", Qty: 5},
		entity.LineInput{ItemCode: "B", Qty: 5},
	)

	_, err := h.confirm(move.ID,
		inventory.Confirmation{ItemCode: "A", Qty: 5},
		inventory.Confirmation{ItemCode: "C", Qty: 1},
	)
	require.Error(t, err)
	assert.Equal(t, domain.CodeLineNotFound, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "C")

	assert.Equal(t, int64(0), h.stock(t, "A", "MAIN"), "la primera confirmación no debe quedar aplicada")
	current, err := h.uc.GetMove(context.Background(), move.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current.Lines[0].QtyConfirmed)
}

func TestConfirmMove_DespachoExcedeSolicitadoAntesDelLibro(t *testing.T) {
	h := newHarness(t)
	h.store.SeedStock(entity.StockEntry{ItemCode: "A", Location: "MAIN", Qty: 100})
	move := h.create(t, "SO", "SO-1", entity.LineInput{ItemCode: "A", Qty: 5})

	_, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 6})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.CodeQuantityExceedsRequest, domain.CodeOf(err))
	assert.Equal(t, int64(100), h.stock(t, "A", "MAIN"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones y validaciones por confirmación
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmMove_Precondiciones(t *testing.T) {
	h := newHarness(t)
	empty := h.create(t, "PO", "PO-VACIO")
	move := h.create(t, "PO", "PO-3", entity.LineInput{ItemCode: "A", Qty: 5})

	cases := []struct {
		name   string
		moveID string
		confs  []inventory.Confirmation
		kind   error
		code   string
	}{
		{"movimiento inexistente", "no-existe", []inventory.Confirmation{{ItemCode: "A", Qty: 1}}, domain.ErrNotFound, domain.CodeMoveNotFound},
		{"lote vacío", move.ID, nil, domain.ErrInvalidInput, domain.CodeEmptyConfirmation},
		{"sin líneas registradas", empty.ID, []inventory.Confirmation{{ItemCode: "A", Qty: 1}}, domain.ErrConflict, domain.CodeNoRegisteredLines},
		{"ubicación distinta no coincide", move.ID, []inventory.Confirmation{{ItemCode: "A", Qty: 1, LocationTo: "DOCK"}}, domain.ErrNotFound, domain.CodeLineNotFound},
		{"qty_confirmed mayor que qty", move.ID, []inventory.Confirmation{{ItemCode: "A", Qty: 2, QtyConfirmed: ptr(3)}}, domain.ErrInvalidInput, domain.CodeQuantityExceedsRequest},
		{"cantidad cero", move.ID, []inventory.Confirmation{{ItemCode: "A", Qty: 0}}, domain.ErrInvalidInput, domain.CodeNonPositiveConfirmation},
		{"qty_confirmed cero", move.ID, []inventory.Confirmation{{ItemCode: "A", Qty: 3, QtyConfirmed: ptr(0)}}, domain.ErrInvalidInput, domain.CodeNonPositiveConfirmation},
		{"cantidad negativa", move.ID, []inventory.Confirmation{{ItemCode: "A", Qty: -1}}, domain.ErrInvalidInput, domain.CodeNonPositiveConfirmation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.confirm(tc.moveID, tc.confs...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.kind)
			assert.Equal(t, tc.code, domain.CodeOf(err))
		})
	}
	assert.Equal(t, int64(0), h.stock(t, "A", "MAIN"))
}

func TestConfirmMove_AprobadoTienePrioridadSobreLoteVacio(t *testing.T) {
	h := newHarness(t)
	move := h.create(t, "RT", "RT-1", entity.LineInput{ItemCode: "A", Qty: 1})
	_, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 1})
	require.NoError(t, err)

	_, err = h.confirm(move.ID)
	assert.Equal(t, domain.CodeAlreadyApproved, domain.CodeOf(err))
}

func TestConfirmMove_PendienteSeCalculaConElAcumuladoDelLote(t *testing.T) {
	h := newHarness(t)
	move := h.create(t, "PO", "PO-4", entity.LineInput{ItemCode: "A", Qty: 10})

	_, err := h.confirm(move.ID,
		inventory.Confirmation{ItemCode: "A", Qty: 6},
		inventory.Confirmation{ItemCode: "A", Qty: 5},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.CodeExceedsPending, domain.CodeOf(err))
	assert.Equal(t, int64(0), h.stock(t, "A", "MAIN"))

	got, err := h.confirm(move.ID,
		inventory.Confirmation{ItemCode: "A", Qty: 6},
		inventory.Confirmation{ItemCode: "A", Qty: 4},
	)
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusApproved, got.Status)
	assert.Equal(t, int64(10), h.stock(t, "A", "MAIN"))
}

func TestConfirmMove_TrasladoMismaUbicacion(t *testing.T) {
	h := newHarness(t)
	h.store.SeedStock(entity.StockEntry{ItemCode: "A", Location: "MAIN", Qty: 5})
	move := h.create(t, "TR", "TR-2", entity.LineInput{ItemCode: "A", Qty: 2})

	_, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 2})
	require.Error(t, err)
	assert.Equal(t, domain.CodeSameLocationTransfer, domain.CodeOf(err))
	assert.Equal(t, int64(5), h.stock(t, "A", "MAIN"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmMove_ProductoInexistente(t *testing.T) {
	h := newHarness(t, entity.Product{ItemCode: "A", ItemName: "Tornillo"})
	move := h.create(t, "PO", "PO-5",
		entity.LineInput{ItemCode: "A", Qty: 5},
		entity.LineInput{ItemCode: "Z", Qty: 5},
	)

	_, err := h.confirm(move.ID,
		inventory.Confirmation{ItemCode: "A", Qty: 5},
		inventory.Confirmation{ItemCode: "Z", Qty: 5},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeProductNotFound, domain.CodeOf(err))
	assert.Equal(t, int64(0), h.stock(t, "A", "MAIN"))

	// Las validaciones de cantidad van antes que el catálogo.
	_, err = h.confirm(move.ID, inventory.Confirmation{ItemCode: "Z", Qty: 9})
	assert.Equal(t, domain.CodeQuantityExceedsRequest, domain.CodeOf(err))

	got, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 5})
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusPending, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmMove_DividirEquivaleAConfirmarJunto(t *testing.T) {
	for _, docType := range []string{"PO", "SO", "TR", "RT"} {
		t.Run(docType, func(t *testing.T) {
			line := entity.LineInput{ItemCode: "A", Qty: 10, LocationFrom: "MAIN", LocationTo: "B1"}
			conf := func(q int64) inventory.Confirmation {
				return inventory.Confirmation{ItemCode: "A", Qty: q, LocationFrom: "MAIN", LocationTo: "B1"}
			}

			once := newHarness(t)
			once.store.SeedStock(entity.StockEntry{ItemCode: "A", Location: "MAIN", Qty: 20})
			m1 := once.create(t, docType, "D-1", line)
			r1, err := once.confirm(m1.ID, conf(7))
			require.NoError(t, err)

			split := newHarness(t)
			split.store.SeedStock(entity.StockEntry{ItemCode: "A", Location: "MAIN", Qty: 20})
			m2 := split.create(t, docType, "D-1", line)
			_, err = split.confirm(m2.ID, conf(3))
			require.NoError(t, err)
			r2, err := split.confirm(m2.ID, conf(4))
			require.NoError(t, err)

			assert.Equal(t, r1.Status, r2.Status)
			assert.Equal(t, r1.Lines[0].QtyConfirmed, r2.Lines[0].QtyConfirmed)
			assert.Equal(t, once.stock(t, "A", "MAIN"), split.stock(t, "A", "MAIN"))
			assert.Equal(t, once.stock(t, "A", "B1"), split.stock(t, "A", "B1"))
		})
	}
}

func TestConfirmMove_EfectoSobreElTotalDelSistema(t *testing.T) {
	cases := []struct {
		docType string
		delta   int64
	}{
		{"PO", 4},
		{"RT", 4},
		{"SO", -4},
		{"TR", 0},
	}
	for _, tc := range cases {
		t.Run(tc.docType, func(t *testing.T) {
			h := newHarness(t)
			h.store.SeedStock(
				entity.StockEntry{ItemCode: "A", Location: "MAIN", Qty: 10},
				entity.StockEntry{ItemCode: "A", Location: "B1", Qty: 1},
			)
			total := func() int64 { return h.stock(t, "A", "MAIN") + h.stock(t, "A", "B1") }
			before := total()

			move := h.create(t, tc.docType, "D-2", entity.LineInput{ItemCode: "A", Qty: 4, LocationFrom: "MAIN", LocationTo: "B1"})
			_, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 4, LocationFrom: "MAIN", LocationTo: "B1"})
			require.NoError(t, err)

			assert.Equal(t, before+tc.delta, total())
		})
	}
}

func TestConfirmMove_DespachosConcurrentesNuncaSobrevenden(t *testing.T) {
	h := newHarness(t)
	h.store.SeedStock(entity.StockEntry{ItemCode: "A", Location: "MAIN", Qty: 10})

	const workers = 8
	ids := make([]string, workers)
	for i := range ids {
		ids[i] = h.create(t, "SO", "SO-C", entity.LineInput{ItemCode: "A", Qty: 3}).ID
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, fail int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := h.confirm(id, inventory.Confirmation{ItemCode: "A", Qty: 3})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
				return
			}
			if errors.Is(err, domain.ErrInsufficientStock) {
				fail++
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, workers-3, fail)
	assert.Equal(t, int64(1), h.stock(t, "A", "MAIN"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditoría, eventos, métricas y trazas
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmMove_AuditoriaConDeltas(t *testing.T) {
	h := newHarness(t)
	move := h.create(t, "PO", "PO-6",
		entity.LineInput{ItemCode: "A", Qty: 5},
		entity.LineInput{ItemCode: "B", Qty: 2},
	)
	_, err := h.confirm(move.ID,
		inventory.Confirmation{ItemCode: "A", Qty: 5, QtyConfirmed: ptr(3)},
		inventory.Confirmation{ItemCode: "B", Qty: 2},
	)
	require.NoError(t, err)

	entries := h.audit(t, move.ID)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.AuditActionConfirmed, entries[0].Action)
	assert.Equal(t, actor, entries[0].Actor)
	assert.Equal(t, fixedNow, entries[0].Timestamp)

	payload, ok := entries[0].Payload.(entity.MoveConfirmed)
	require.True(t, ok)
	assert.Equal(t, entity.MoveStatusPending, payload.Status)
	require.Len(t, payload.Lines, 2)
	assert.Equal(t, entity.LineDelta{
		ItemCode: "A", LocationFrom: "MAIN", LocationTo: "MAIN",
		Qty: 5, QtyConfirmed: 3, QtyConfirmedTotal: 3, QtyPendingTotal: 2,
	}, payload.Lines[0])
	assert.Equal(t, int64(0), payload.Lines[1].QtyPendingTotal)

	created, ok := entries[1].Payload.(entity.MoveCreated)
	require.True(t, ok)
	assert.Equal(t, "PO-6", created.DocNumber)
	assert.Len(t, created.Lines, 2)
}

func TestMoveUseCase_PublicaEventosYMetricas(t *testing.T) {
	h := newHarness(t)
	move := h.create(t, "PO", "PO-7", entity.LineInput{ItemCode: "A", Qty: 5})
	_, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 5})
	require.NoError(t, err)
	_, err = h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 1})
	require.Error(t, err)

	events := h.publisher.Events()
	require.Len(t, events, 2, "los rechazos no publican")
	assert.Equal(t, inventory.EventMoveCreated, events[0].EventType)
	assert.Equal(t, inventory.EventMoveConfirmed, events[1].EventType)
	assert.Equal(t, entity.MoveStatusApproved, events[1].Status)
	require.Len(t, events[1].Lines, 1)
	assert.Equal(t, int64(5), events[1].Lines[0].QtyConfirmed)

	assert.Equal(t, []observation{
		{docType: entity.DocTypePO, outcome: inventory.OutcomeApplied},
		{docType: entity.DocTypePO, outcome: inventory.OutcomeRejected},
	}, h.observer.confirms)
	assert.Equal(t, []int64{5}, h.observer.deltas)
}

func TestMoveUseCase_FalloDePublicacionNoRevierte(t *testing.T) {
	h := newHarness(t)
	h.publisher.err = errors.New("broker caído")

	move := h.create(t, "PO", "PO-8", entity.LineInput{ItemCode: "A", Qty: 2})
	got, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 2})
	require.NoError(t, err)
	assert.Equal(t, entity.MoveStatusApproved, got.Status)
	assert.Equal(t, int64(2), h.stock(t, "A", "MAIN"))
}

func TestConfirmMove_SpanRegistraCodigoDeError(t *testing.T) {
	h := newHarness(t)
	move := h.create(t, "SO", "SO-T", entity.LineInput{ItemCode: "A", Qty: 1})
	_, err := h.confirm(move.ID, inventory.Confirmation{ItemCode: "A", Qty: 1})
	require.Error(t, err)

	var found bool
	for _, span := range spanRecorder.Ended() {
		if span.Name() != "inventory.ConfirmMove" {
			continue
		}
		attrs := attribute.NewSet(span.Attributes()...)
		if v, ok := attrs.Value("move.id"); !ok || v.AsString() != move.ID {
			continue
		}
		found = true
		assert.Equal(t, codes.Error, span.Status().Code)
		code, ok := attrs.Value("error.code")
		require.True(t, ok)
		assert.Equal(t, domain.CodeInsufficientStock, code.AsString())
	}
	assert.True(t, found, "debe existir el span de la confirmación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMove_Validaciones(t *testing.T) {
	h := newHarness(t)
	cases := []struct {
		name    string
		docType string
		number  string
		lines   []entity.LineInput
		code    string
	}{
		{"tipo inválido", "XX", "D", nil, domain.CodeInvalidDocType},
		{"número vacío", "PO", "", nil, domain.CodeInvalidDocNumber},
		{"qty no positiva", "PO", "D", []entity.LineInput{{ItemCode: "A", Qty: 0}}, domain.CodeInvalidLine},
		{"item vacío", "PO", "D", []entity.LineInput{{Qty: 1}}, domain.CodeInvalidLine},
		{"clave duplicada", "PO", "D", []entity.LineInput{{ItemCode: "A", Qty: 1}, {ItemCode: "A", Qty: 2, LocationTo: "MAIN"}}, domain.CodeDuplicateLineKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.uc.CreateMove(context.Background(), inventory.CreateMoveInput{
				DocType: tc.docType, DocNumber: tc.number, Lines: tc.lines, Actor: actor,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tc.code, domain.CodeOf(err))
		})
	}
	moves, err := h.uc.ListMoves(context.Background(), repository.MoveFilter{})
	require.NoError(t, err)
	assert.Empty(t, moves, "una creación rechazada no persiste nada")
}

func TestListMoves_FiltrosYLimites(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 3; i++ {
		h.create(t, "PO", "PO-L", entity.LineInput{ItemCode: "A", Qty: 1})
	}
	so := h.create(t, "SO", "SO-L", entity.LineInput{ItemCode: "A", Qty: 1})

	all, err := h.uc.ListMoves(context.Background(), repository.MoveFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, so.ID, all[0].ID)

	onlySO, err := h.uc.ListMoves(context.Background(), repository.MoveFilter{DocType: entity.DocTypeSO})
	require.NoError(t, err)
	require.Len(t, onlySO, 1)

	page, err := h.uc.ListMoves(context.Background(), repository.MoveFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	_, err = h.uc.ListMoves(context.Background(), repository.MoveFilter{Status: "closed"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = h.uc.ListMoves(context.Background(), repository.MoveFilter{DocType: "XX"})
	assert.Equal(t, domain.CodeInvalidDocType, domain.CodeOf(err))
}

func TestGetMove_Inexistente(t *testing.T) {
	h := newHarness(t)
	_, err := h.uc.GetMove(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.CodeMoveNotFound, domain.CodeOf(err))
}
