package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shrigondanews/news-api/internal/core/domain"
	"github.com/shrigondanews/news-api/internal/core/ports"
)

type stubArticleRepo struct {
	articles map[string]*domain.Article
	insert   error
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[string]*domain.Article)}
}

func (r *stubArticleRepo) Insert(_ context.Context, a *domain.Article) error {
	if r.insert != nil {
		return r.insert
	}
	clone := *a
	r.articles[a.ID] = &clone
	return nil
}

func (r *stubArticleRepo) FindPublished(_ context.Context, category string, limit int64) ([]domain.Article, error) {
	out := []domain.Article{}
	for _, a := range r.articles {
		if a.Status != domain.StatusPublished {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubArticleRepo) FindPublishedByID(_ context.Context, id string) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok || a.Status != domain.StatusPublished {
		return nil, domain.ErrArticleNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArticleRepo) IncrementViews(_ context.Context, id string) error {
	a, ok := r.articles[id]
	if !ok {
		return domain.ErrArticleNotFound
	}
	a.Views++
	return nil
}

func (r *stubArticleRepo) Update(_ context.Context, id string, fields map[string]any) error {
	a, ok := r.articles[id]
	if !ok {
		return domain.ErrArticleNotFound
	}
	if title, ok := fields["title"].(string); ok {
		a.Title = title
	}
	if status, ok := fields["status"].(domain.ArticleStatus); ok {
		a.Status = status
	}
	return nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *stubArticleRepo) FindAll(_ context.Context) ([]domain.Article, error) {
	out := []domain.Article{}
	for _, a := range r.articles {
		out = append(out, *a)
	}
	return out, nil
}

// stubNotifier records whether it was invoked.
type stubNotifier struct {
	recorded []string
	latest   []domain.Notification
}

func (n *stubNotifier) Record(_ context.Context, article *domain.Article) {
	n.recorded = append(n.recorded, article.ID)
}

func (n *stubNotifier) Latest(_ context.Context) ([]domain.Notification, error) {
	return n.latest, nil
}

func testArticleService(repo ports.ArticleRepository, notifier ports.NotificationService) *ArticleService {
	return NewArticleService(repo, notifier, zerolog.Nop())
}

func TestArticleService_Create_Defaults(t *testing.T) {
	repo := newStubArticleRepo()
	notifier := &stubNotifier{}
	svc := testArticleService(repo, notifier)

	author := domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleEditor}
	article, err := svc.Create(context.Background(), author, ports.CreateArticleInput{
		Title:    "Hello",
		Content:  "Body text",
		Category: "local",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if article.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if article.Views != 0 {
		t.Fatalf("expected views 0, got %d", article.Views)
	}
	if article.Status != domain.StatusPublished {
		t.Fatalf("expected status published, got %q", article.Status)
	}
	if article.CreatedAt.IsZero() || article.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
	if article.Author != "alice" || article.AuthorID != "u1" {
		t.Fatalf("expected author snapshot from principal, got %q/%q", article.Author, article.AuthorID)
	}
	if article.Excerpt != "Body text" {
		t.Fatalf("expected excerpt default from content, got %q", article.Excerpt)
	}
	if len(notifier.recorded) != 1 || notifier.recorded[0] != article.ID {
		t.Fatalf("expected one notification for the new article, got %v", notifier.recorded)
	}
}

func TestArticleService_Create_ExcerptTruncated(t *testing.T) {
	repo := newStubArticleRepo()
	svc := testArticleService(repo, &stubNotifier{})

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	article, err := svc.Create(context.Background(), domain.Principal{ID: "u1", Username: "a"}, ports.CreateArticleInput{
		Title:   "t",
		Content: string(long),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(article.Excerpt) != 200 {
		t.Fatalf("expected 200-char excerpt, got %d", len(article.Excerpt))
	}
}

func TestArticleService_Create_MissingFields(t *testing.T) {
	svc := testArticleService(newStubArticleRepo(), &stubNotifier{})

	if _, err := svc.Create(context.Background(), domain.Principal{}, ports.CreateArticleInput{Content: "c"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.Principal{}, ports.CreateArticleInput{Title: "t"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing content, got %v", err)
	}
}

func TestArticleService_Get_IncrementsViews(t *testing.T) {
	repo := newStubArticleRepo()
	svc := testArticleService(repo, &stubNotifier{})

	created, err := svc.Create(context.Background(), domain.Principal{ID: "u1", Username: "a"}, ports.CreateArticleInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("first get failed: %v", err)
	}
	second, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if second.Views != first.Views+1 {
		t.Fatalf("expected strictly increasing views: first=%d second=%d", first.Views, second.Views)
	}
}

func TestArticleService_Get_NotFound(t *testing.T) {
	svc := testArticleService(newStubArticleRepo(), &stubNotifier{})
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleService_Get_UnpublishedHidden(t *testing.T) {
	repo := newStubArticleRepo()
	svc := testArticleService(repo, &stubNotifier{})

	created, _ := svc.Create(context.Background(), domain.Principal{ID: "u1", Username: "a"}, ports.CreateArticleInput{Title: "t", Content: "c"})
	draft := domain.StatusDraft
	if err := svc.Update(context.Background(), created.ID, ports.UpdateArticleInput{Status: &draft}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("draft article must be invisible to the public fetch, got %v", err)
	}
}

func TestArticleService_List_FiltersAndLimits(t *testing.T) {
	repo := newStubArticleRepo()
	svc := testArticleService(repo, &stubNotifier{})

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), domain.Principal{ID: "u1", Username: "a"}, ports.CreateArticleInput{
			Title: "t", Content: "c", Category: "sports",
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), domain.Principal{ID: "u1", Username: "a"}, ports.CreateArticleInput{
		Title: "t", Content: "c", Category: "local",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sports, err := svc.List(context.Background(), ports.ListArticlesInput{Category: "sports"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sports) != 3 {
		t.Fatalf("expected 3 sports articles, got %d", len(sports))
	}

	capped, err := svc.List(context.Background(), ports.ListArticlesInput{Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(capped) != 2 {
		t.Fatalf("expected limit 2 respected, got %d", len(capped))
	}
}

func TestArticleService_UpdateDelete_NotFound(t *testing.T) {
	svc := testArticleService(newStubArticleRepo(), &stubNotifier{})

	title := "new"
	if err := svc.Update(context.Background(), "missing", ports.UpdateArticleInput{Title: &title}); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound on update, got %v", err)
	}
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound on delete, got %v", err)
	}
}

func TestArticleService_ListAll_IncludesDrafts(t *testing.T) {
	repo := newStubArticleRepo()
	svc := testArticleService(repo, &stubNotifier{})

	created, _ := svc.Create(context.Background(), domain.Principal{ID: "u1", Username: "a"}, ports.CreateArticleInput{Title: "t", Content: "c"})
	draft := domain.StatusDraft
	_ = svc.Update(context.Background(), created.ID, ports.UpdateArticleInput{Status: &draft})

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected draft article in admin listing, got %d", len(all))
	}
}
