package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/repository"
	"gamestore/pkg/errors"
	"gamestore/pkg/utils"
)

var schemaCache sync.Map

type scope = func(*gorm.DB) *gorm.DB

// manyToMany writes the join rows of one relation from the ids found on
// the owning entity.
type manyToMany[T entity.Identifiable] struct {
	join         interface{}
	ownerColumn  string
	targetColumn string
	ids          func(*T) []uuid.UUID
}

// cascade removes dependent rows whose column references the deleted id.
type cascade struct {
	model  interface{}
	column string
}

type option[T entity.Identifiable] func(*gormRepository[T])

func withManyToMany[T entity.Identifiable](join interface{}, ownerColumn, targetColumn string, ids func(*T) []uuid.UUID) option[T] {
	return func(r *gormRepository[T]) {
		r.relations = append(r.relations, manyToMany[T]{join: join, ownerColumn: ownerColumn, targetColumn: targetColumn, ids: ids})
		r.cascades = append(r.cascades, cascade{model: join, column: ownerColumn})
	}
}

func withDeleteCascade[T entity.Identifiable](model interface{}, column string) option[T] {
	return func(r *gormRepository[T]) {
		r.cascades = append(r.cascades, cascade{model: model, column: column})
	}
}

type gormRepository[T entity.Identifiable] struct {
	db        *gorm.DB
	resource  string
	relations []manyToMany[T]
	cascades  []cascade
}

func newGormRepository[T entity.Identifiable](db *gorm.DB, resource string, opts ...option[T]) *gormRepository[T] {
	r := &gormRepository[T]{db: db, resource: resource}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *gormRepository[T]) schema() (*schema.Schema, error) {
	s, err := schema.Parse(new(T), &schemaCache, r.db.NamingStrategy)
	if err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to resolve %s schema", r.resource), err)
	}
	return s, nil
}

func (r *gormRepository[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(r.db.WithContext(ctx), id)
}

func (r *gormRepository[T]) exists(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	if err := tx.Model(new(T)).Where(byID(id)).Count(&count).Error; err != nil {
		return false, errors.Internal(fmt.Sprintf("Failed to check %s", r.resource), err)
	}
	return count > 0, nil
}

func (r *gormRepository[T]) GetByID(ctx context.Context, id uuid.UUID, include ...string) (*T, error) {
	preloads, err := r.preloads(include)
	if err != nil {
		return nil, err
	}

	var e T
	err = r.db.WithContext(ctx).Scopes(preloads...).Where(byID(id)).First(&e).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to get %s", r.resource), err)
	}
	return &e, nil
}

// first returns the first record matching the conditions, or nil.
func (r *gormRepository[T]) first(ctx context.Context, conditions ...repository.Condition) (*T, error) {
	res, err := r.Query(ctx, repository.QueryCriteria{Conditions: conditions}, utils.NewPagingParams(1, 1))
	if err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, nil
	}
	return &res.Items[0], nil
}

func (r *gormRepository[T]) Query(ctx context.Context, criteria repository.QueryCriteria, paging utils.PagingParams) (*utils.PaginatedResult[T], error) {
	return r.query(ctx, criteria, paging)
}

// query runs include -> filter -> count -> order -> skip -> take. extra
// scopes narrow the filtered set and so also apply to the count.
func (r *gormRepository[T]) query(ctx context.Context, criteria repository.QueryCriteria, paging utils.PagingParams, extra ...scope) (*utils.PaginatedResult[T], error) {
	paging = paging.Normalize()

	preloads, err := r.preloads(criteria.Include)
	if err != nil {
		return nil, err
	}
	filters, err := r.filters(criteria.Conditions)
	if err != nil {
		return nil, err
	}
	filters = append(filters, extra...)
	order, err := r.order(criteria.Sort)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Scopes(filters...).Count(&total).Error; err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to count %s", r.resource), err)
	}

	items := make([]T, 0, paging.PageSize)
	err = r.db.WithContext(ctx).
		Model(new(T)).
		Scopes(preloads...).
		Scopes(filters...).
		Scopes(order).
		Offset(paging.Offset()).
		Limit(paging.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to query %s", r.resource), err)
	}

	return utils.NewPaginatedResult(items, paging, total), nil
}

func (r *gormRepository[T]) Count(ctx context.Context, criteria repository.QueryCriteria) (int64, error) {
	filters, err := r.filters(criteria.Conditions)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Scopes(filters...).Count(&total).Error; err != nil {
		return 0, errors.Internal(fmt.Sprintf("Failed to count %s", r.resource), err)
	}
	return total, nil
}

func (r *gormRepository[T]) Add(ctx context.Context, e *T) (*T, error) {
	if e == nil {
		return nil, errors.Validation(fmt.Sprintf("%s must not be nil", r.resource))
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(e).Error; err != nil {
			return err
		}
		return r.writeRelations(tx, e)
	})
	if err != nil {
		return nil, r.translate("create", err)
	}
	return e, nil
}

// Update replaces the stored record with e. CreatedAt is kept from the
// stored row; every other column, including zero values, is overwritten.
func (r *gormRepository[T]) Update(ctx context.Context, e *T) (bool, error) {
	if e == nil {
		return false, errors.Validation(fmt.Sprintf("%s must not be nil", r.resource))
	}

	var found bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if found, err = r.exists(tx, (*e).GetID()); err != nil || !found {
			return err
		}
		return r.replace(tx, e)
	})
	if err != nil {
		return false, r.translate("update", err)
	}
	return found, nil
}

func (r *gormRepository[T]) replace(tx *gorm.DB, e *T) error {
	err := tx.Select("*").Omit(clause.Associations, "CreatedAt").Updates(e).Error
	if err != nil {
		return err
	}
	return r.writeRelations(tx, e)
}

func (r *gormRepository[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.deleteWith(ctx, id, nil)
}

// deleteWith removes the record and its dependent rows in one transaction.
// before runs first inside the same transaction.
func (r *gormRepository[T]) deleteWith(ctx context.Context, id uuid.UUID, before func(tx *gorm.DB) error) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := r.exists(tx, id)
		if err != nil || !found {
			return err
		}
		if before != nil {
			if err := before(tx); err != nil {
				return err
			}
		}
		for _, c := range r.cascades {
			if err := tx.Where(clause.Eq{Column: clause.Column{Name: c.column}, Value: id}).Delete(c.model).Error; err != nil {
				return err
			}
		}
		res := tx.Where(byID(id)).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, r.translate("delete", err)
	}
	return deleted, nil
}

func (r *gormRepository[T]) writeRelations(tx *gorm.DB, e *T) error {
	owner := (*e).GetID()
	for _, rel := range r.relations {
		if err := tx.Where(clause.Eq{Column: clause.Column{Name: rel.ownerColumn}, Value: owner}).Delete(rel.join).Error; err != nil {
			return err
		}

		seen := make(map[uuid.UUID]struct{})
		rows := make([]map[string]interface{}, 0)
		for _, target := range rel.ids(e) {
			if _, dup := seen[target]; dup {
				continue
			}
			seen[target] = struct{}{}
			rows = append(rows, map[string]interface{}{rel.ownerColumn: owner, rel.targetColumn: target})
		}
		if len(rows) == 0 {
			continue
		}
		if err := tx.Model(rel.join).Create(rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *gormRepository[T]) preloads(include []string) ([]scope, error) {
	if len(include) == 0 {
		return nil, nil
	}
	s, err := r.schema()
	if err != nil {
		return nil, err
	}

	scopes := make([]scope, 0, len(include))
	for _, name := range include {
		rel := lookUpRelation(s, name)
		if rel == nil {
			return nil, errors.Validation(fmt.Sprintf("unknown relation %q for %s", name, r.resource))
		}
		relName := rel.Name
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Preload(relName) })
	}
	return scopes, nil
}

func (r *gormRepository[T]) filters(conditions []repository.Condition) ([]scope, error) {
	if len(conditions) == 0 {
		return nil, nil
	}
	s, err := r.schema()
	if err != nil {
		return nil, err
	}

	scopes := make([]scope, 0, len(conditions))
	for _, cond := range conditions {
		column, err := r.column(s, cond.Field)
		if err != nil {
			return nil, err
		}
		expr, err := conditionExpr(column, cond)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where(expr) })
	}
	return scopes, nil
}

func (r *gormRepository[T]) order(fields []repository.SortField) (scope, error) {
	s, err := r.schema()
	if err != nil {
		return nil, err
	}

	columns := make([]clause.OrderByColumn, 0, len(fields)+2)
	for _, f := range fields {
		column, err := r.column(s, f.Field)
		if err != nil {
			return nil, err
		}
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: f.Desc})
	}
	if len(fields) == 0 {
		if created := s.LookUpField("CreatedAt"); created != nil {
			columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: created.DBName}})
		}
	}
	// The primary key makes the order total so pages never overlap.
	columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderBy{Columns: columns})
	}, nil
}

// column resolves a field name ("ParentID", "parent_id" or "parentId") to
// its column, rejecting anything that is not a mapped column.
func (r *gormRepository[T]) column(s *schema.Schema, name string) (string, error) {
	candidates := []string{name, r.db.NamingStrategy.ColumnName("", name)}
	for _, c := range candidates {
		if f := s.LookUpField(c); f != nil && f.DBName != "" {
			return f.DBName, nil
		}
	}
	return "", errors.Validation(fmt.Sprintf("unknown field %q for %s", name, r.resource))
}

func (r *gormRepository[T]) translate(action string, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Conflict(fmt.Sprintf("%s already exists", r.resource))
	}
	return errors.Internal(fmt.Sprintf("Failed to %s %s", action, r.resource), err)
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func conditionExpr(column string, cond repository.Condition) (clause.Expression, error) {
	col := clause.Column{Name: column}
	switch cond.Op {
	case repository.OpEq, "":
		return clause.Eq{Column: col, Value: cond.Value}, nil
	case repository.OpNe:
		return clause.Neq{Column: col, Value: cond.Value}, nil
	case repository.OpGt:
		return clause.Gt{Column: col, Value: cond.Value}, nil
	case repository.OpGte:
		return clause.Gte{Column: col, Value: cond.Value}, nil
	case repository.OpLt:
		return clause.Lt{Column: col, Value: cond.Value}, nil
	case repository.OpLte:
		return clause.Lte{Column: col, Value: cond.Value}, nil
	case repository.OpNull:
		return clause.Eq{Column: col, Value: nil}, nil
	case repository.OpLike:
		pattern := "%" + likeEscaper.Replace(strings.ToLower(fmt.Sprint(cond.Value))) + "%"
		return clause.Expr{SQL: `LOWER(?) LIKE ? ESCAPE '\'`, Vars: []interface{}{col, pattern}}, nil
	case repository.OpEqFold:
		return clause.Expr{SQL: "LOWER(?) = ?", Vars: []interface{}{col, strings.ToLower(fmt.Sprint(cond.Value))}}, nil
	case repository.OpIn:
		values, ok := cond.Value.([]interface{})
		if !ok {
			return nil, errors.Validation(fmt.Sprintf("operator in on %q needs a list value", cond.Field))
		}
		return clause.IN{Column: col, Values: values}, nil
	}
	return nil, errors.Validation(fmt.Sprintf("unsupported operator %q", cond.Op))
}

func lookUpRelation(s *schema.Schema, name string) *schema.Relationship {
	for relName, rel := range s.Relationships.Relations {
		if strings.EqualFold(relName, name) || strings.EqualFold(strings.ReplaceAll(name, "_", ""), relName) {
			return rel
		}
	}
	return nil
}

func byID(id uuid.UUID) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: "id"}, Value: id}
}
