// Package gems управляет банкой кристаллов.
// Кристалл выдаётся один раз за календарный день — в момент, когда
// полный набор активных ритуалов собран впервые.
// models.go описывает структуру кристалла.
package gems

import "time"

// Gem представляет один кристалл в банке.
// На пару (пользователь, дата) существует не больше одного кристалла.
// При «опустошении банки» кристаллы архивируются, а не удаляются.
type Gem struct {
	ID         int64      `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"-"`
	Date       string     `db:"date" json:"date"` // День, за который выдан
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	IsArchived bool       `db:"is_archived" json:"-"`
	ArchivedAt *time.Time `db:"archived_at" json:"-"`
}
