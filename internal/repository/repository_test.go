package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DOCSHELF_BACK-END/internal/database/dbtest"
	"DOCSHELF_BACK-END/internal/models"
)

type repos struct {
	users         *UserRepository
	categories    *CategoryRepository
	subcategories *SubcategoryRepository
	documents     *DocumentRepository
}

func setup(t *testing.T) repos {
	t.Helper()
	db := dbtest.Open(t).Gorm
	return repos{
		users:         NewUserRepository(db),
		categories:    NewCategoryRepository(db),
		subcategories: NewSubcategoryRepository(db),
		documents:     NewDocumentRepository(db),
	}
}

func uintPtr(v uint) *uint { return &v }

func createUser(t *testing.T, r repos, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, HashedPassword: "$2a$10$hash", IsActive: true}
	require.NoError(t, r.users.Create(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	r := setup(t)
	ctx := context.Background()

	user := createUser(t, r, "ada@example.com")
	assert.NotZero(t, user.ID)

	got, err := r.users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, got.IsActive)

	byID, err := r.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	taken, err := r.users.EmailExists(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	err = r.users.Create(ctx, &models.User{Email: "ada@example.com", HashedPassword: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = r.users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepository(t *testing.T) {
	r := setup(t)
	ctx := context.Background()

	cat := &models.Category{Name: "Finance"}
	require.NoError(t, r.categories.Create(ctx, cat))
	assert.NotZero(t, cat.ID)

	assert.ErrorIs(t, r.categories.Create(ctx, &models.Category{Name: "Finance"}), ErrDuplicate)

	sub := &models.Subcategory{Name: "Taxes", CategoryID: uintPtr(cat.ID)}
	require.NoError(t, r.subcategories.Create(ctx, sub))

	list, err := r.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Subcategories, 1)
	assert.Equal(t, "Taxes", list[0].Subcategories[0].Name)

	updated, err := r.categories.Update(ctx, cat.ID, "Money")
	require.NoError(t, err)
	assert.Equal(t, "Money", updated.Name)
	assert.Len(t, updated.Subcategories, 1)

	_, err = r.categories.Update(ctx, 999, "Ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.categories.Delete(ctx, 999), ErrNotFound)
}

func TestCategoryDeleteClearsReferences(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	owner := createUser(t, r, "owner@example.com")

	cat := &models.Category{Name: "Work"}
	require.NoError(t, r.categories.Create(ctx, cat))
	sub := &models.Subcategory{Name: "Reports", CategoryID: uintPtr(cat.ID)}
	require.NoError(t, r.subcategories.Create(ctx, sub))
	doc := &models.Document{Title: "Q1", Content: "...", DocumentType: "report", CategoryID: uintPtr(cat.ID), SubcategoryID: uintPtr(sub.ID)}
	require.NoError(t, r.documents.Create(ctx, owner.ID, doc))

	require.NoError(t, r.categories.Delete(ctx, cat.ID))

	_, err := r.categories.Get(ctx, cat.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	gotSub, err := r.subcategories.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Nil(t, gotSub.CategoryID)

	gotDoc, err := r.documents.GetOwned(ctx, doc.ID, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, gotDoc.CategoryID)
	require.NotNil(t, gotDoc.SubcategoryID)
	assert.Equal(t, sub.ID, *gotDoc.SubcategoryID)
}

func TestSubcategoryRepository(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	owner := createUser(t, r, "owner@example.com")

	err := r.subcategories.Create(ctx, &models.Subcategory{Name: "Orphan", CategoryID: uintPtr(42)})
	assert.ErrorIs(t, err, ErrInvalidReference)

	sub := &models.Subcategory{Name: "Loose"}
	require.NoError(t, r.subcategories.Create(ctx, sub))
	assert.Nil(t, sub.CategoryID)

	cat := &models.Category{Name: "Home"}
	require.NoError(t, r.categories.Create(ctx, cat))

	updated, err := r.subcategories.Update(ctx, sub.ID, "Bills", uintPtr(cat.ID))
	require.NoError(t, err)
	assert.Equal(t, "Bills", updated.Name)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, cat.ID, *updated.CategoryID)

	updated, err = r.subcategories.Update(ctx, sub.ID, "Bills", nil)
	require.NoError(t, err)
	assert.Nil(t, updated.CategoryID)

	doc := &models.Document{Title: "Power", Content: "kWh", DocumentType: "bill", SubcategoryID: uintPtr(sub.ID)}
	require.NoError(t, r.documents.Create(ctx, owner.ID, doc))

	require.NoError(t, r.subcategories.Delete(ctx, sub.ID))
	gotDoc, err := r.documents.GetOwned(ctx, doc.ID, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, gotDoc.SubcategoryID)

	assert.ErrorIs(t, r.subcategories.Delete(ctx, sub.ID), ErrNotFound)
}

func TestDocumentRepositoryOwnerScoping(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	alice := createUser(t, r, "alice@example.com")
	bob := createUser(t, r, "bob@example.com")

	summary := "short"
	doc := &models.Document{Title: "Diary", Content: "secret", DocumentType: "note", Summary: &summary}
	require.NoError(t, r.documents.Create(ctx, alice.ID, doc))
	assert.False(t, doc.CreatedAt.IsZero())

	aliceDocs, err := r.documents.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceDocs, 1)

	bobDocs, err := r.documents.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobDocs)

	_, err = r.documents.GetOwned(ctx, doc.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.documents.UpdateOwned(ctx, doc.ID, bob.ID, &models.Document{Title: "pwned"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, r.documents.DeleteOwned(ctx, doc.ID, bob.ID), ErrNotFound)

	still, err := r.documents.GetOwned(ctx, doc.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diary", still.Title)
}

func TestDocumentUpdateOverwritesFieldsButNotCreatedAt(t *testing.T) {
	r := setup(t)
	ctx := context.Background()
	owner := createUser(t, r, "owner@example.com")

	cat := &models.Category{Name: "Travel"}
	require.NoError(t, r.categories.Create(ctx, cat))

	summary := "draft"
	created := time.Now().Add(-48 * time.Hour).UTC().Truncate(time.Second)
	doc := &models.Document{Title: "Plan", Content: "v1", DocumentType: "note", Summary: &summary, CategoryID: uintPtr(cat.ID), CreatedAt: created}
	require.NoError(t, r.documents.Create(ctx, owner.ID, doc))

	updated, err := r.documents.UpdateOwned(ctx, doc.ID, owner.ID, &models.Document{
		Title:        "Plan v2",
		Content:      "v2",
		DocumentType: "memo",
	})
	require.NoError(t, err)

	assert.Equal(t, "Plan v2", updated.Title)
	assert.Equal(t, "v2", updated.Content)
	assert.Equal(t, "memo", updated.DocumentType)
	assert.Nil(t, updated.Summary)
	assert.Nil(t, updated.CategoryID)
	assert.True(t, created.Equal(updated.CreatedAt.UTC()), "created_at changed: %v", updated.CreatedAt)
	require.NotNil(t, updated.OwnerID)
	assert.Equal(t, owner.ID, *updated.OwnerID)

	_, err = r.documents.UpdateOwned(ctx, doc.ID, owner.ID, &models.Document{Title: "x", CategoryID: uintPtr(77)})
	assert.ErrorIs(t, err, ErrInvalidReference)

	require.NoError(t, r.documents.DeleteOwned(ctx, doc.ID, owner.ID))
	_, err = r.documents.GetOwned(ctx, doc.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
