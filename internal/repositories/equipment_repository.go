package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	apperrors "inventory-system/pkg/errors"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var baseColumns = []string{
	"id", "tipo",
	"marca_cpu", "referencia_cpu", "servicio_cpu", "placa_cpu",
	"marca_monitor", "referencia_monitor", "servicio_monitor", "placa_monitor",
	"mouse", "teclado", "cargador", "cable_red", "cable_poder",
	"adaptador_pantalla", "adaptador_red", "adaptador_multipuerto", "antena_wifi",
	"base_adicional", "cable_poder_adicional", "guaya_adicional", "pantalla_adicional",
	"hoja_vida", "ruta_acta", "acta",
}

var assignmentColumns = []string{"nombre_funcionario", "cedula", "correo", "dependencia", "jefe"}

func columnsFor(p partition.ID) []string {
	cols := make([]string, 0, len(baseColumns)+6)
	cols = append(cols, baseColumns...)
	if partition.HasAssignment(p) {
		cols = append(cols, assignmentColumns...)
	}
	if partition.HasObservations(p) {
		cols = append(cols, "observaciones")
	}
	return cols
}

// scanDest arma los destinos de Scan en el mismo orden que columnsFor.
func scanDest(p partition.ID, e *entities.Equipment, asg *entities.AssignmentInfo) []any {
	dest := []any{
		&e.ID, &e.Tipo,
		&e.MarcaCPU, &e.ReferenciaCPU, &e.ServicioCPU, &e.PlacaCPU,
		&e.MarcaMonitor, &e.ReferenciaMonitor, &e.ServicioMonitor, &e.PlacaMonitor,
		&e.Accesorios.Mouse, &e.Accesorios.Teclado, &e.Accesorios.Cargador,
		&e.Accesorios.CableRed, &e.Accesorios.CablePoder,
		&e.Accesorios.AdaptadorPantalla, &e.Accesorios.AdaptadorRed,
		&e.Accesorios.AdaptadorMultipuerto, &e.Accesorios.AntenaWifi,
		&e.Accesorios.BaseAdicional, &e.Accesorios.CablePoderAdicional,
		&e.Accesorios.GuayaAdicional, &e.Accesorios.PantallaAdicional,
		&e.HojaVida, &e.RutaActa, &e.Acta,
	}
	if partition.HasAssignment(p) {
		dest = append(dest, &asg.NombreFuncionario, &asg.Cedula, &asg.Correo, &asg.Dependencia, &asg.Jefe)
	}
	if partition.HasObservations(p) {
		dest = append(dest, &e.Observaciones)
	}
	return dest
}

func scanEquipment(p partition.ID, row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var asg entities.AssignmentInfo
	if err := row.Scan(scanDest(p, &e, &asg)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if partition.HasAssignment(p) {
		e.Asignacion = &asg
	}
	return &e, nil
}

func queryEquipments(ctx context.Context, q querier, p partition.ID, pred interface{}, args ...interface{}) ([]entities.Equipment, error) {
	builder := psql.Select(columnsFor(p)...).From(p.Table()).OrderBy("id")
	if pred != nil {
		builder = builder.Where(pred, args...)
	}
	sqlQuery, sqlArgs, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlQuery, sqlArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		var asg entities.AssignmentInfo
		if err := rows.Scan(scanDest(p, &e, &asg)...); err != nil {
			return nil, err
		}
		if partition.HasAssignment(p) {
			e.Asignacion = &asg
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func findOne(ctx context.Context, q querier, p partition.ID, pred interface{}, forUpdate bool) (*entities.Equipment, error) {
	builder := psql.Select(columnsFor(p)...).From(p.Table()).Where(pred).OrderBy("id").Limit(1)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(p, q.QueryRow(ctx, sqlQuery, args...))
}

func insertEquipment(ctx context.Context, q querier, p partition.ID, rec entities.Equipment) (*entities.Equipment, error) {
	values := sq.Eq{
		"tipo":                  rec.Tipo,
		"marca_cpu":             rec.MarcaCPU,
		"referencia_cpu":        rec.ReferenciaCPU,
		"servicio_cpu":          rec.ServicioCPU,
		"placa_cpu":             rec.PlacaCPU,
		"marca_monitor":         rec.MarcaMonitor,
		"referencia_monitor":    rec.ReferenciaMonitor,
		"servicio_monitor":      rec.ServicioMonitor,
		"placa_monitor":         rec.PlacaMonitor,
		"mouse":                 rec.Accesorios.Mouse,
		"teclado":               rec.Accesorios.Teclado,
		"cargador":              rec.Accesorios.Cargador,
		"cable_red":             rec.Accesorios.CableRed,
		"cable_poder":           rec.Accesorios.CablePoder,
		"adaptador_pantalla":    rec.Accesorios.AdaptadorPantalla,
		"adaptador_red":         rec.Accesorios.AdaptadorRed,
		"adaptador_multipuerto": rec.Accesorios.AdaptadorMultipuerto,
		"antena_wifi":           rec.Accesorios.AntenaWifi,
		"base_adicional":        rec.Accesorios.BaseAdicional,
		"cable_poder_adicional": rec.Accesorios.CablePoderAdicional,
		"guaya_adicional":       rec.Accesorios.GuayaAdicional,
		"pantalla_adicional":    rec.Accesorios.PantallaAdicional,
		"hoja_vida":             rec.HojaVida,
		"ruta_acta":             rec.RutaActa,
		"acta":                  rec.Acta,
	}
	if partition.HasAssignment(p) {
		asg := rec.Asignacion
		if asg == nil {
			asg = &entities.AssignmentInfo{}
		}
		values["nombre_funcionario"] = asg.NombreFuncionario
		values["cedula"] = asg.Cedula
		values["correo"] = asg.Correo
		values["dependencia"] = asg.Dependencia
		values["jefe"] = asg.Jefe
	}
	if partition.HasObservations(p) {
		values["observaciones"] = rec.Observaciones
	}

	cols := make([]string, 0, len(values))
	args := make([]interface{}, 0, len(values))
	// columnsFor fija un orden estable de columnas para el INSERT.
	for _, c := range columnsFor(p) {
		if c == "id" {
			continue
		}
		cols = append(cols, c)
		args = append(args, values[c])
	}

	sqlQuery, sqlArgs, err := psql.Insert(p.Table()).
		Columns(cols...).
		Values(args...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := rec.Clone()
	if err := q.QueryRow(ctx, sqlQuery, sqlArgs...).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("insert en %s: %w", p.Table(), err)
	}
	return &created, nil
}

func deleteEquipment(ctx context.Context, q querier, p partition.ID, id int64) error {
	sqlQuery, args, err := psql.Delete(p.Table()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EquipmentRepository implementa Store sobre PostgreSQL.
type EquipmentRepository struct {
	pool   *pgxpool.Pool
	txm    TxManagerInterface
	logger *zap.Logger
}

func NewEquipmentRepository(pool *pgxpool.Pool, logger *zap.Logger) Store {
	return &EquipmentRepository{
		pool:   pool,
		txm:    NewTxManager(pool),
		logger: logger,
	}
}

func (r *EquipmentRepository) WithinTransaction(ctx context.Context, fn func(tx StoreTx) error) error {
	return r.txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return fn(&storeTx{q: tx})
	})
}

func (r *EquipmentRepository) ListPartition(ctx context.Context, p partition.ID) ([]entities.Equipment, error) {
	return queryEquipments(ctx, r.pool, p, nil)
}

func (r *EquipmentRepository) FindByServiceTag(ctx context.Context, p partition.ID, tag string) (*entities.Equipment, error) {
	return findOne(ctx, r.pool, p, sq.Eq{"servicio_cpu": tag}, false)
}

func (r *EquipmentRepository) EventsByServiceTag(ctx context.Context, p partition.ID, tag string) ([]entities.Equipment, error) {
	return queryEquipments(ctx, r.pool, p, sq.Eq{"servicio_cpu": tag})
}

func (r *EquipmentRepository) SetRutaActa(ctx context.Context, p partition.ID, id int64, ruta string) error {
	sqlQuery, args, err := psql.Update(p.Table()).
		Set("ruta_acta", ruta).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// storeTx adapta una pgx.Tx al contrato StoreTx.
type storeTx struct {
	q querier
}

func (t *storeTx) FindByIDForUpdate(ctx context.Context, p partition.ID, id int64) (*entities.Equipment, error) {
	return findOne(ctx, t.q, p, sq.Eq{"id": id}, true)
}

func (t *storeTx) FindByServiceTagForUpdate(ctx context.Context, p partition.ID, tag string) (*entities.Equipment, error) {
	return findOne(ctx, t.q, p, sq.Eq{"servicio_cpu": tag}, true)
}

func (t *storeTx) Insert(ctx context.Context, p partition.ID, rec entities.Equipment) (*entities.Equipment, error) {
	return insertEquipment(ctx, t.q, p, rec)
}

func (t *storeTx) Delete(ctx context.Context, p partition.ID, id int64) error {
	return deleteEquipment(ctx, t.q, p, id)
}
