package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingopress/internal/models"
)

// fakeTagService is an in-memory CRUD implementation recording call counts.
type fakeTagService struct {
	tags      []models.Tag
	nextID    int64
	listCalls int
	failNext  error
}

func (f *fakeTagService) List(_ context.Context, p models.ListParams) (models.Page[models.Tag], error) {
	f.listCalls++
	return models.Page[models.Tag]{
		Content: f.tags,
		Page:    models.PageInfo{Size: p.Size, Number: p.Page, TotalElements: int64(len(f.tags)), TotalPages: 1},
	}, nil
}

func (f *fakeTagService) Get(_ context.Context, id int64) (models.Tag, error) {
	for _, t := range f.tags {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Tag{}, errors.New("not found")
}

func (f *fakeTagService) Create(_ context.Context, req models.TagRequest) (models.Tag, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return models.Tag{}, err
	}
	f.nextID++
	tag := models.Tag{ID: f.nextID, Slug: req.Slug, Color: req.Color, Translations: req.Translations}
	f.tags = append(f.tags, tag)
	return tag, nil
}

func (f *fakeTagService) Update(_ context.Context, id int64, req models.TagRequest) (models.Tag, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return models.Tag{}, err
	}
	for i, t := range f.tags {
		if t.ID == id {
			f.tags[i].Slug = req.Slug
			f.tags[i].Color = req.Color
			f.tags[i].Translations = req.Translations
			return f.tags[i], nil
		}
	}
	return models.Tag{}, errors.New("not found")
}

func (f *fakeTagService) Delete(_ context.Context, id int64) error {
	for i, t := range f.tags {
		if t.ID == id {
			f.tags = append(f.tags[:i], f.tags[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

// recordingNotifier captures emitted notifications.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

var tagMessages = Messages{
	Created:      "Tag başarıyla oluşturuldu",
	CreateFailed: "Tag oluşturulurken bir hata oluştu, tekrar deneyiniz",
	Updated:      "Tag başarıyla güncellendi",
	UpdateFailed: "Tag güncellenirken bir hata oluştu, tekrar deneyiniz",
	Deleted:      "Tag başarıyla silindi",
	DeleteFailed: "Tag silinirken bir hata oluştu, tekrar deneyiniz",
}

func newTagResource(svc *fakeTagService) *Resource[models.Tag, models.TagRequest] {
	return NewResource[models.Tag, models.TagRequest]("tags", "tag", svc, NewCache(NewMemory()), tagMessages)
}

func TestResource_CreateInvalidatesSeededList(t *testing.T) {
	svc := &fakeTagService{}
	res := newTagResource(svc)
	ctx := context.Background()
	n := &recordingNotifier{}
	p := models.DefaultListParams()

	// Seed the list cache.
	page, err := res.List(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	require.Equal(t, 1, svc.listCalls)

	// Create a record.
	created, err := res.Create(ctx, n, models.TagRequest{
		Slug:  "news",
		Color: "#3B82F6",
		Translations: []models.TagTranslation{
			{LanguageCode: "tr", Name: "Haber"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tag başarıyla oluşturuldu"}, n.successes)
	assert.Empty(t, n.errors)

	// The next list read must refetch and include the new record — cached
	// pre-mutation data must not be served.
	page, err = res.List(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.listCalls, "list must refetch after create")
	require.Len(t, page.Content, 1)
	assert.Equal(t, created.ID, page.Content[0].ID)
	assert.Equal(t, "news", page.Content[0].Slug)
}

func TestResource_CreateInvalidatesEveryCachedTuple(t *testing.T) {
	svc := &fakeTagService{}
	res := newTagResource(svc)
	ctx := context.Background()

	p1 := models.ListParams{Search: "a", Page: 0, Size: 10, Sort: "id,asc"}
	p2 := models.ListParams{Search: "b", Page: 2, Size: 5, Sort: "id,desc"}
	_, _ = res.List(ctx, p1)
	_, _ = res.List(ctx, p2)
	require.Equal(t, 2, svc.listCalls)

	_, err := res.Create(ctx, &recordingNotifier{}, models.TagRequest{Slug: "x"})
	require.NoError(t, err)

	_, _ = res.List(ctx, p1)
	_, _ = res.List(ctx, p2)
	assert.Equal(t, 4, svc.listCalls, "every previously cached tuple must refetch")
}

func TestResource_UpdateInvalidatesEntityEntry(t *testing.T) {
	svc := &fakeTagService{}
	res := newTagResource(svc)
	ctx := context.Background()
	n := &recordingNotifier{}

	created, err := res.Create(ctx, n, models.TagRequest{Slug: "old-slug", Color: "#000000"})
	require.NoError(t, err)

	// Seed the entity cache.
	got, err := res.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "old-slug", got.Slug)

	_, err = res.Update(ctx, n, created.ID, models.TagRequest{Slug: "new-slug", Color: "#000000"})
	require.NoError(t, err)
	assert.Contains(t, n.successes, "Tag başarıyla güncellendi")

	got, err = res.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-slug", got.Slug, "entity cache must not serve the pre-update record")
}

func TestResource_DeleteInvalidatesAndNotifies(t *testing.T) {
	svc := &fakeTagService{}
	res := newTagResource(svc)
	ctx := context.Background()
	n := &recordingNotifier{}

	created, err := res.Create(ctx, n, models.TagRequest{Slug: "gone"})
	require.NoError(t, err)
	_, _ = res.List(ctx, models.DefaultListParams())

	require.NoError(t, res.Delete(ctx, n, created.ID))
	assert.Contains(t, n.successes, "Tag başarıyla silindi")

	page, err := res.List(ctx, models.DefaultListParams())
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestResource_FailedMutationNotifiesAndKeepsCache(t *testing.T) {
	svc := &fakeTagService{}
	res := newTagResource(svc)
	ctx := context.Background()
	n := &recordingNotifier{}

	_, _ = res.List(ctx, models.DefaultListParams())
	require.Equal(t, 1, svc.listCalls)

	svc.failNext = errors.New("boom")
	_, err := res.Create(ctx, n, models.TagRequest{Slug: "nope"})
	require.Error(t, err)
	assert.Equal(t, []string{"Tag oluşturulurken bir hata oluştu, tekrar deneyiniz"}, n.errors)
	assert.Empty(t, n.successes)

	// Failed mutations change nothing; the cached list stays valid.
	_, _ = res.List(ctx, models.DefaultListParams())
	assert.Equal(t, 1, svc.listCalls, "failed mutation must not invalidate")
}
