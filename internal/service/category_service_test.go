package service

import (
	"errors"
	"testing"

	"github.com/blogicum-next/internal/repository"
)

func TestCategoryCreateDerivesSlug(t *testing.T) {
	svc := newBlogServices(t)
	categories := NewCategoryService(repository.NewCategoryRepository(svc.db))

	created, err := categories.Create(CategoryInput{Title: "Hello World", Description: "desc", IsPublished: true})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if created.Slug != "hello-world" {
		t.Fatalf("unexpected slug: %s", created.Slug)
	}

	if _, err := categories.Create(CategoryInput{Title: "Other", Description: "desc", Slug: "hello-world"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("duplicate slug should fail, got %v", err)
	}

	_, err = categories.Create(CategoryInput{Title: "Bad", Description: "desc", Slug: "has space"})
	verr, ok := AsValidationError(err)
	if !ok || verr.Fields["slug"] != "form.slug_invalid" {
		t.Fatalf("invalid slug should fail validation, got %v", err)
	}

	updated, err := categories.Update(created.ID, CategoryInput{Title: "Hello", Description: "desc", Slug: "hello-world"})
	if err != nil {
		t.Fatalf("update keeping own slug failed: %v", err)
	}
	if updated.Title != "Hello" {
		t.Fatalf("unexpected title: %s", updated.Title)
	}
}

func TestCategorySetPublished(t *testing.T) {
	svc := newBlogServices(t)
	categories := NewCategoryService(repository.NewCategoryRepository(svc.db))
	created := svc.mustCategory(t, "travel", true)

	hidden, err := categories.SetPublished(created.ID, false)
	if err != nil {
		t.Fatalf("set published failed: %v", err)
	}
	if hidden.IsPublished {
		t.Fatalf("category should be hidden")
	}
	if _, err := categories.Get(created.ID + 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing category should be not found, got %v", err)
	}
}
