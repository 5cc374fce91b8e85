package cart

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// UseCase administra el lote reversible de traslados de una sesión. Cada Add
// aplica sus líneas al libro de inmediato (resta central, suma sede, bitácora
// por línea) y solo después las agrega al total visible: el libro siempre es
// consistente con "las líneas agregadas hasta ahora", nunca hay stock a la
// vez en tránsito y sin reflejar.
type UseCase struct {
	snapshots repository.SnapshotRepository
	audit     repository.AuditRepository
	sessions  *Manager
	stock     config.StockConfig
}

// New construye el caso de uso del carrito.
func New(
	snapshots repository.SnapshotRepository,
	audit repository.AuditRepository,
	sessions *Manager,
	stock config.StockConfig,
) *UseCase {
	return &UseCase{snapshots: snapshots, audit: audit, sessions: sessions, stock: stock}
}

// Open abre una sesión de carrito vacía.
func (uc *UseCase) Open(ctx context.Context) *dto.CartDTO {
	return toCartDTO(uc.sessions.Open())
}

// AddLines valida y aplica un bloque de líneas hacia una sede, todo-o-nada:
// cada línea se valida contra el saldo vivo de la central (acumulando las
// líneas del mismo producto dentro del bloque); si alguna falla, se devuelve
// InsufficientStockError con cada ofensora y el libro queda intacto. En caso
// de éxito se persiste el snapshot, se escribe una entrada TRANSFER por línea
// y recién entonces avanza el estado del carrito.
func (uc *UseCase) AddLines(ctx context.Context, sessionID string, in dto.AddLinesRequest) (*dto.CartDTO, error) {
	if !uc.stock.IsSite(in.Destination) {
		return nil, domain.ErrInvalidLocation
	}
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	// Las líneas en cero o negativas se filtran, nunca se validan ni aplican.
	lines := make([]dto.CartLineRequest, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Quantity > 0 && l.Product != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}

	// Validación del bloque completo antes de mutar nada.
	var failures []LineFailure
	requested := make(map[string]int)
	for _, l := range lines {
		if snap.Get(l.Product) == nil {
			return nil, domain.ErrNotFound
		}
		requested[l.Product] += l.Quantity
	}
	for _, l := range lines {
		available := snap.Quantity(l.Product, uc.stock.Central)
		if requested[l.Product] > available {
			failures = append(failures, LineFailure{
				Product:   l.Product,
				Requested: requested[l.Product],
				Available: available,
			})
			delete(requested, l.Product) // una falla por producto
		}
	}
	if len(failures) > 0 {
		return nil, &InsufficientStockError{Failures: failures}
	}

	now := time.Now()
	added := make([]entity.BatchLine, 0, len(lines))
	for _, l := range lines {
		if err := snap.Transfer(l.Product, uc.stock.Central, in.Destination, l.Quantity); err != nil {
			return nil, err
		}
		added = append(added, entity.BatchLine{
			ID:          uuid.New().String(),
			Destination: in.Destination,
			Product:     l.Product,
			Quantity:    l.Quantity,
			AddedAt:     now,
		})
	}

	if err := uc.snapshots.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("guardar snapshot: %w", err)
	}
	for _, line := range added {
		entry := &entity.AuditEntry{
			ID:        line.ID,
			Timestamp: now,
			Product:   line.Product,
			Quantity:  line.Quantity,
			Kind:      entity.AuditKindTransfer,
			Detail:    fmt.Sprintf("traslado %s -> %s", uc.stock.Central, line.Destination),
		}
		if err := uc.audit.Append(ctx, entry); err != nil {
			return nil, fmt.Errorf("registrar bitácora: %w", err)
		}
	}

	session.Lines = append(session.Lines, added...)
	return toCartDTO(session), nil
}

// ReverseLine aplica el inverso exacto de una línea ya agregada (resta en la
// sede, restaura la central), lo registra como corrección y quita la línea
// del lote. Tras revertir, ambos saldos quedan como si la línea nunca se
// hubiera agregado.
func (uc *UseCase) ReverseLine(ctx context.Context, sessionID string, index int) (*dto.CartDTO, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Lines) {
		return nil, domain.ErrNotFound
	}
	line := session.Lines[index]

	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}
	if err := snap.Transfer(line.Product, line.Destination, uc.stock.Central, line.Quantity); err != nil {
		return nil, err
	}
	if err := uc.snapshots.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("guardar snapshot: %w", err)
	}

	entry := &entity.AuditEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Product:   line.Product,
		Quantity:  line.Quantity,
		Kind:      entity.AuditKindCorrection,
		Detail:    fmt.Sprintf("reverso de traslado %s -> %s (línea %s)", uc.stock.Central, line.Destination, line.ID),
	}
	if err := uc.audit.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("registrar bitácora: %w", err)
	}

	session.Lines = append(session.Lines[:index], session.Lines[index+1:]...)
	return toCartDTO(session), nil
}

// Finalize produce el resumen agrupado producto × destino del lote completo y
// cierra la sesión. No muta el libro: las líneas ya fueron aplicadas
// incrementalmente.
func (uc *UseCase) Finalize(ctx context.Context, sessionID string) (*dto.CartSummaryDTO, error) {
	session, err := uc.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]map[string]int)
	destSet := make(map[string]bool)
	total := 0
	for _, line := range session.Lines {
		if byProduct[line.Product] == nil {
			byProduct[line.Product] = make(map[string]int)
		}
		byProduct[line.Product][line.Destination] += line.Quantity
		destSet[line.Destination] = true
		total += line.Quantity
	}

	destinations := make([]string, 0, len(destSet))
	for d := range destSet {
		destinations = append(destinations, d)
	}
	sort.Strings(destinations)

	products := make([]string, 0, len(byProduct))
	for p := range byProduct {
		products = append(products, p)
	}
	sort.Strings(products)

	rows := make([]dto.ManifestRowDTO, 0, len(products))
	for _, p := range products {
		rowTotal := 0
		for _, q := range byProduct[p] {
			rowTotal += q
		}
		rows = append(rows, dto.ManifestRowDTO{Product: p, ByDest: byProduct[p], Total: rowTotal})
	}

	uc.sessions.Close(sessionID)
	return &dto.CartSummaryDTO{
		SessionID:    sessionID,
		Destinations: destinations,
		Rows:         rows,
		TotalUnits:   total,
	}, nil
}

func toCartDTO(s *Session) *dto.CartDTO {
	out := &dto.CartDTO{SessionID: s.ID, CreatedAt: s.CreatedAt, Lines: make([]dto.CartLineDTO, len(s.Lines))}
	for i, l := range s.Lines {
		out.Lines[i] = dto.CartLineDTO{
			Index:       i,
			Destination: l.Destination,
			Product:     l.Product,
			Quantity:    l.Quantity,
			AddedAt:     l.AddedAt,
		}
	}
	return out
}
