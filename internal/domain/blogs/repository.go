package blogs

import (
	"errors"

	"gorm.io/gorm"
)

// Repository is the persistence access for blogs. It performs no
// validation; callers validate before writing.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all blogs ordered by creation time, newest first. A
// non-empty keyword restricts the result to titles containing it,
// with the case sensitivity of the underlying store's LIKE.
func (r *Repository) List(keyword string) ([]Blog, error) {
	q := r.db.Model(&Blog{}).Order("created_at DESC")
	if keyword != "" {
		q = q.Where("title LIKE ?", "%"+keyword+"%")
	}

	var out []Blog
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Get(id uint) (*Blog, error) {
	var b Blog
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Create(b *Blog) error {
	return r.db.Create(b).Error
}

func (r *Repository) Update(b *Blog) error {
	return r.db.Save(b).Error
}

func (r *Repository) Delete(id uint) error {
	res := r.db.Delete(&Blog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
