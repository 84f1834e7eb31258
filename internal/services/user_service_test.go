package services

import (
	"context"
	"testing"

	"orion/internal/models"
	"orion/internal/repositories/interfaces"
)

// stubUserRepo applies list mutations the way the backend's array
// transforms do: idempotent add, silent remove of absent members.
type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User)}
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return user, nil
}

func (r *stubUserRepo) UpdateProfile(ctx context.Context, id string, profile models.ProfileInfo) error {
	user, ok := r.users[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	user.ProfileInfo = profile
	return nil
}

func (r *stubUserRepo) AddToList(ctx context.Context, userID string, list models.TrailList, trailID string) error {
	user, ok := r.users[userID]
	if !ok {
		return interfaces.ErrNotFound
	}
	target := r.listFor(user, list)
	for _, id := range *target {
		if id == trailID {
			return nil
		}
	}
	*target = append(*target, trailID)
	return nil
}

func (r *stubUserRepo) RemoveFromList(ctx context.Context, userID string, list models.TrailList, trailID string) error {
	user, ok := r.users[userID]
	if !ok {
		return interfaces.ErrNotFound
	}
	target := r.listFor(user, list)
	kept := (*target)[:0]
	for _, id := range *target {
		if id != trailID {
			kept = append(kept, id)
		}
	}
	*target = kept
	return nil
}

func (r *stubUserRepo) MarkCompleted(ctx context.Context, userID, trailID string) error {
	if err := r.AddToList(ctx, userID, models.ListCompleted, trailID); err != nil {
		return err
	}
	if err := r.RemoveFromList(ctx, userID, models.ListFavourites, trailID); err != nil {
		return err
	}
	return r.RemoveFromList(ctx, userID, models.ListWishlist, trailID)
}

func (r *stubUserRepo) listFor(user *models.User, list models.TrailList) *[]string {
	switch list {
	case models.ListFavourites:
		return &user.Favourites
	case models.ListWishlist:
		return &user.Wishlist
	default:
		return &user.Completed
	}
}

func userServiceFixture(t *testing.T) (*UserService, *stubUserRepo, *stubTrailRepo) {
	t.Helper()
	users := newStubUserRepo()
	users.users["u1"] = &models.User{
		ID:          "u1",
		ProfileInfo: models.ProfileInfo{Name: "Sam", Email: "sam@example.com"},
	}

	trails := newStubTrailRepo()
	for _, id := range []string{"t1", "t2", "t3"} {
		trail := validTrail()
		trail.ID = id
		trails.trails[id] = trail
	}

	return NewUserService(users, trails, testLogger()), users, trails
}

func TestUpdateProfileValidates(t *testing.T) {
	svc, _, _ := userServiceFixture(t)

	_, err := svc.UpdateProfile(context.Background(), "u1", models.ProfileInfo{Name: "", Email: "not-an-email"})
	if _, ok := AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	user, err := svc.UpdateProfile(context.Background(), "u1", models.ProfileInfo{Name: "Sam Lee", Email: "sam@example.com"})
	if err != nil {
		t.Fatalf("valid update failed: %v", err)
	}
	if user.ProfileInfo.Name != "Sam Lee" {
		t.Errorf("name = %q, want Sam Lee", user.ProfileInfo.Name)
	}
}

func TestAddFavoriteRequiresTrail(t *testing.T) {
	svc, users, _ := userServiceFixture(t)

	if err := svc.AddFavorite(context.Background(), "u1", "nope"); !IsNotFound(err) {
		t.Fatalf("expected not-found for missing trail, got %v", err)
	}
	if err := svc.AddFavorite(context.Background(), "u1", "t1"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	if got := users.users["u1"].Favourites; len(got) != 1 || got[0] != "t1" {
		t.Errorf("favourites = %v, want [t1]", got)
	}

	// Adding again is idempotent.
	if err := svc.AddFavorite(context.Background(), "u1", "t1"); err != nil {
		t.Fatalf("repeat AddFavorite failed: %v", err)
	}
	if got := users.users["u1"].Favourites; len(got) != 1 {
		t.Errorf("favourites = %v, want single entry after repeat add", got)
	}
}

func TestMarkCompletedClearsOtherLists(t *testing.T) {
	svc, users, _ := userServiceFixture(t)

	if err := svc.AddFavorite(context.Background(), "u1", "t1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddWishlist(context.Background(), "u1", "t1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.MarkCompleted(context.Background(), "u1", "t1"); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}

	user := users.users["u1"]
	if len(user.Completed) != 1 || user.Completed[0] != "t1" {
		t.Errorf("completed = %v, want [t1]", user.Completed)
	}
	if len(user.Favourites) != 0 {
		t.Errorf("favourites = %v, want empty after completion", user.Favourites)
	}
	if len(user.Wishlist) != 0 {
		t.Errorf("wishlist = %v, want empty after completion", user.Wishlist)
	}
}

func TestGetSavedTrailsSkipsDangling(t *testing.T) {
	svc, users, _ := userServiceFixture(t)

	users.users["u1"].Favourites = []string{"t1", "deleted", "t2"}
	users.users["u1"].Wishlist = []string{"t3"}

	saved, err := svc.GetSavedTrails(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetSavedTrails failed: %v", err)
	}

	if len(saved.Favourites) != 2 {
		t.Errorf("favourites resolved to %d trails, want 2 (dangling skipped)", len(saved.Favourites))
	}
	if len(saved.Wishlist) != 1 || saved.Wishlist[0].ID != "t3" {
		t.Errorf("wishlist = %v, want [t3]", saved.Wishlist)
	}
	if saved.Completed == nil || len(saved.Completed) != 0 {
		t.Error("empty lists must resolve to empty slices, not nil")
	}
}

func TestGetSavedTrailsUserMissing(t *testing.T) {
	svc, _, _ := userServiceFixture(t)

	_, err := svc.GetSavedTrails(context.Background(), "ghost")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if err.Error() != "User not found" {
		t.Errorf("message = %q, want %q", err.Error(), "User not found")
	}
}

func TestRemoveFromListsToleratesAbsent(t *testing.T) {
	svc, _, _ := userServiceFixture(t)

	if err := svc.RemoveFavorite(context.Background(), "u1", "t1"); err != nil {
		t.Errorf("removing an absent favourite should succeed, got %v", err)
	}
	if err := svc.RemoveCompleted(context.Background(), "u1", "t2"); err != nil {
		t.Errorf("removing an absent completed entry should succeed, got %v", err)
	}
}
