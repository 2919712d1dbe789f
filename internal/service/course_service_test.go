package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/repository"
)

type fakeCourseStore struct {
	courses []model.Course
	nextID  int
}

func (f *fakeCourseStore) List(_ context.Context) ([]model.Course, error) { return f.courses, nil }

func (f *fakeCourseStore) GetByID(_ context.Context, id int) (*model.Course, error) {
	for i := range f.courses {
		if f.courses[i].ID == id {
			return &f.courses[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCourseStore) Create(_ context.Context, c *model.Course) error {
	f.nextID++
	c.ID = f.nextID
	f.courses = append(f.courses, *c)
	return nil
}

func (f *fakeCourseStore) Update(_ context.Context, id int, name string) (*model.Course, error) {
	for i := range f.courses {
		if f.courses[i].ID == id {
			f.courses[i].Name = name
			return &f.courses[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCourseStore) Delete(_ context.Context, id int) error {
	for i := range f.courses {
		if f.courses[i].ID == id {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeCourseStore) CreateMany(_ context.Context, courses []model.Course) (int64, error) {
	for i := range courses {
		f.nextID++
		courses[i].ID = f.nextID
	}
	f.courses = append(f.courses, courses...)
	return int64(len(courses)), nil
}

func TestCourseImportCSV(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCourseService(store, zerolog.Nop())

	csv := "courseName\nGo Fundamentals\nDistributed Systems\n"
	inserted, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
	require.Len(t, store.courses, 2)
	assert.Equal(t, "Go Fundamentals", store.courses[0].Name)
}

func TestCourseImportCSV_SkipsEmptyNames(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCourseService(store, zerolog.Nop())

	csv := "courseName\nGo Fundamentals\n\nDistributed Systems\n"
	inserted, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
}

func TestCourseImportCSV_Empty(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCourseService(store, zerolog.Nop())

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("courseName\n"))
	assert.ErrorIs(t, err, ErrEmptyCSV)
	assert.Empty(t, store.courses)
}

func TestCourseImportCSV_Malformed(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCourseService(store, zerolog.Nop())

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}
