package repositories

import (
	"context"

	"github.com/Divya-010704/TripTeller/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines read access to the account directory. Registration
// and verification live in a separate service that owns the writes.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByEmails(ctx context.Context, emails []string) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// GetUserByEmail retrieves a single directory entry by account email
func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("user", email)
		}
		return nil, models.NewUpstreamError("account directory lookup failed", err)
	}
	return &user, nil
}

// GetUsersByEmails retrieves all directory entries matching the given
// emails in one query. Unknown emails are simply absent from the result.
func (r *PostgresUserRepository) GetUsersByEmails(ctx context.Context, emails []string) ([]models.User, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("email IN ?", emails).Find(&users).Error; err != nil {
		return nil, models.NewUpstreamError("account directory lookup failed", err)
	}
	return users, nil
}
