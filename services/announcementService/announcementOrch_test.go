package announcementService

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"terminusaOnline/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm: %v", err)
	}
	return gormDB, mock
}

func TestCreate(t *testing.T) {
	t.Run("Publishes announcement", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "announcements"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		announcement, err := Create(db, 7, "Server maintenance", "Gates close at midnight.", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if announcement.AuthorID == nil || *announcement.AuthorID != 7 {
			t.Errorf("expected author 7, got %v", announcement.AuthorID)
		}
		if !announcement.IsActive {
			t.Error("expected new announcement to be active")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("Rejects empty title", func(t *testing.T) {
		db, mock := newMockDB(t)

		if _, err := Create(db, 7, "", "body", nil); err == nil {
			t.Error("expected error for empty title")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("statements were sent to the connection: %v", err)
		}
	})
}

func TestLatest(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "announcements" WHERE is_active = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "is_active"}).
			AddRow(2, "Guild war season", "Sign-ups open.", true).
			AddRow(1, "Welcome", "Terminusa Online is live.", true))

	announcements, err := Latest(db, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(announcements) != 2 {
		t.Fatalf("expected 2 announcements, got %d", len(announcements))
	}
	if announcements[0].Title != "Guild war season" {
		t.Errorf("expected newest first, got %q", announcements[0].Title)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestAuthor(t *testing.T) {
	t.Run("Resolves author by id", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(7, "sung_jinwoo"))

		authorID := uint(7)
		announcement := &models.Announcement{ID: 1, AuthorID: &authorID}

		user, err := Author(db, announcement)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user == nil || user.Username != "sung_jinwoo" {
			t.Errorf("expected user sung_jinwoo, got %v", user)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet expectations: %v", err)
		}
	})

	t.Run("System announcement has no author", func(t *testing.T) {
		db, mock := newMockDB(t)

		user, err := Author(db, &models.Announcement{ID: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil user, got %v", user)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("statements were sent to the connection: %v", err)
		}
	})
}

func TestExpireStale(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "announcements" SET "is_active"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	expired, err := ExpireStale(db, time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired != 3 {
		t.Errorf("expected 3 expired announcements, got %d", expired)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
