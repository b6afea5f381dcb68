package services

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/banit/househunt-backend/internal/config"
	"github.com/banit/househunt-backend/internal/geo"
	"github.com/banit/househunt-backend/internal/models"
	"github.com/banit/househunt-backend/internal/repository"
	"github.com/banit/househunt-backend/internal/testutil"
	"github.com/banit/househunt-backend/internal/types"
)

type env struct {
	db       *gorm.DB
	fixture  *testutil.Fixture
	kv       *fakeKVStore
	geocoder *fakeGeocoder
	mailer   *fakeMailer
	images   *fakeImageStore
	config   *config.Config

	auth     *AuthService
	houses   *HouseService
	managers *ManagerService
	users    *UserService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.NewDB(t)
	e := &env{
		db:       db,
		fixture:  testutil.Seed(t, db),
		kv:       newFakeKVStore(),
		geocoder: &fakeGeocoder{name: "Kilimani, Nairobi"},
		mailer:   &fakeMailer{},
		images:   &fakeImageStore{},
		config: &config.Config{
			JWTSecret:             "test-secret",
			SessionTTL:            time.Hour,
			RankCacheTTL:          time.Minute,
			NearbyDefaultRadiusKm: 5,
		},
	}

	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	rankCache := NewRankingCache(e.kv, e.config.RankCacheTTL)

	e.auth = NewAuthService(userRepo, e.geocoder, e.config)
	e.houses = NewHouseService(houseRepo, repository.NewReviewRepository(db), repository.NewFavoriteRepository(db), rankCache, e.config.NearbyDefaultRadiusKm).
		WithRandSource(1)
	e.managers = NewManagerService(repository.NewManagerRepository(db), houseRepo, rankCache, e.mailer)
	e.users = NewUserService(userRepo, repository.NewNotificationRepository(db), e.geocoder, e.images)
	return e
}

func (e *env) login(t *testing.T) *types.AuthResponse {
	t.Helper()

	resp, err := e.auth.Login(context.Background(), LoginRequest{Email: "tenant@example.test", Password: "secret-pass"})
	require.NoError(t, err)
	return resp
}

func (e *env) viewer(t *testing.T) *models.User {
	t.Helper()

	u, err := e.auth.GetUserByID(context.Background(), e.fixture.User.ID)
	require.NoError(t, err)
	return u
}

func TestAuthorize(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.auth.Authorize(ctx, "")
	require.NoError(t, err)
	assert.False(t, res.Authorized)

	session := e.login(t)
	res, err = e.auth.Authorize(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, res.Authorized)
	require.NotNil(t, res.User)
	assert.Equal(t, e.fixture.User.ID, res.User.ID)

	res, err = e.auth.Authorize(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, res.Authorized, "legacy keys are rejected unless enabled")

	require.NoError(t, e.auth.Logout(ctx, e.fixture.User.ID))
	res, err = e.auth.Authorize(ctx, session.Token)
	require.NoError(t, err)
	assert.False(t, res.Authorized)
}

func TestAuthorize_LegacyFallback(t *testing.T) {
	e := newEnv(t)
	e.config.LegacyTokenFallback = true
	ctx := context.Background()

	res, err := e.auth.Authorize(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, res.Authorized)
	assert.Nil(t, res.User)

	res, err = e.auth.Authorize(ctx, "not-alnum!")
	require.NoError(t, err)
	assert.False(t, res.Authorized)

	res, err = e.auth.Authorize(ctx, strings.Repeat("z", 20))
	require.NoError(t, err)
	assert.False(t, res.Authorized, "ASCII sum above bound")
}

func TestAuthorize_RotatedToken(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first := e.login(t)
	second := e.login(t)

	res, err := e.auth.Authorize(ctx, first.Token)
	require.NoError(t, err)
	assert.False(t, res.Authorized, "a new login replaces the stored token")

	res, err = e.auth.Authorize(ctx, second.Token)
	require.NoError(t, err)
	assert.True(t, res.Authorized)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Login(ctx, LoginRequest{Email: "tenant@example.test", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = e.auth.Login(ctx, LoginRequest{Email: "nobody@example.test", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = e.auth.Login(ctx, LoginRequest{Email: "not-an-email", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegister(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	lat, lon := -1.29, 36.78

	resp, err := e.auth.Register(ctx, RegisterRequest{
		Name:        "Amina",
		Email:       "Amina@Example.test",
		Password:    "long-password",
		Latitude:    &lat,
		Longitude:   &lon,
		Preferences: &PreferenceRequest{County: "Nairobi", MinRent: 8000, MaxRent: 15000},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "amina@example.test", resp.User.Email)
	assert.Equal(t, "Kilimani, Nairobi", resp.User.LocationName)
	require.NotNil(t, resp.User.Preferences)
	assert.Equal(t, 15000.0, resp.User.Preferences.MaxRent)

	auth, err := e.auth.Authorize(ctx, resp.Token)
	require.NoError(t, err)
	assert.True(t, auth.Authorized)

	_, err = e.auth.Register(ctx, RegisterRequest{Name: "Again", Email: "amina@example.test", Password: "long-password"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = e.auth.Register(ctx, RegisterRequest{
		Name:        "Bad",
		Email:       "bad@example.test",
		Password:    "long-password",
		Preferences: &PreferenceRequest{MinRent: 20000, MaxRent: 1000},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFindNearby(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	nearby, err := e.houses.FindNearby(ctx, -1.286389, 36.817223, 1, true)
	require.NoError(t, err)
	require.Len(t, nearby, 1, "inactive building is never returned")
	assert.Equal(t, e.fixture.Active.ID, nearby[0].Building.ID)
	assert.InDelta(t, 0, nearby[0].DistanceKm, 1e-9)

	// Thika is roughly 40 km away.
	far, err := e.houses.FindNearby(ctx, -1.0333, 37.0693, 10, false)
	require.NoError(t, err)
	assert.Empty(t, far)

	_, err = e.houses.FindNearby(ctx, 91, 0, 1, false)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinates)

	_, err = e.houses.FindNearby(ctx, 0, 0, -1, false)
	assert.ErrorIs(t, err, geo.ErrInvalidRadius)
}

func TestSearchByLocation(t *testing.T) {
	e := newEnv(t)

	houses, err := e.houses.SearchByLocation(context.Background(), -1.2864, 36.8172, 0, nil)
	require.NoError(t, err)
	require.Len(t, houses, 2)
	assert.Equal(t, e.fixture.HouseA.ID, houses[0].ID)
	_, reduced := houses[0].Reviews.([]types.Reviewer)
	assert.True(t, reduced)

	_, err = e.houses.SearchByLocation(context.Background(), -1.2864, 36.8172, -3, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, geo.ErrInvalidRadius)

	houses, err = e.houses.SearchByLocation(context.Background(), -1.2864, 36.8172, 0.001, nil)
	require.NoError(t, err)
	assert.Empty(t, houses)
}

func TestAggregateHouseRating(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	f := e.fixture

	avg, err := e.houses.AggregateHouseRating(ctx, f.HouseA.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	other := testutil.CreateUser(t, e.db, "other@example.test", "secret-pass")
	testutil.AddReview(t, e.db, f.User.ID, f.HouseA.ID, 4)
	testutil.AddReview(t, e.db, other.ID, f.HouseA.ID, 2)

	avg, err = e.houses.AggregateHouseRating(ctx, f.HouseA.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, avg)

	_, err = e.houses.AggregateHouseRating(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordView(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.houses.RecordView(ctx, e.fixture.HouseA.ID)
	require.NoError(t, err)
	view, err := e.houses.RecordView(ctx, e.fixture.HouseA.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Counts)

	_, err = e.houses.RecordView(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordReview_Validation(t *testing.T) {
	e := newEnv(t)
	viewer := e.viewer(t)

	_, err := e.houses.RecordReview(context.Background(), viewer, ReviewRequest{HouseID: e.fixture.HouseA.ID, Rating: 6})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = e.houses.RecordReview(context.Background(), viewer, ReviewRequest{HouseID: 9999, Rating: 3})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRankManagers_CacheLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	f := e.fixture
	viewer := e.viewer(t)

	ranked, err := e.managers.RankManagers(ctx, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].AverageRatings)
	_, cached := e.kv.data[rankedManagersKey]
	assert.True(t, cached)

	// Written behind the service's back: the cached ranking is still served.
	other := testutil.CreateUser(t, e.db, "other@example.test", "secret-pass")
	testutil.AddReview(t, e.db, other.ID, f.HouseB.ID, 2)
	ranked, err = e.managers.RankManagers(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ranked[0].AverageRatings)

	_, err = e.houses.RecordReview(ctx, viewer, ReviewRequest{HouseID: f.HouseA.ID, Rating: 4, Message: "good"})
	require.NoError(t, err)

	ranked, err = e.managers.RankManagers(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, ranked[0].AverageRatings)
	assert.Equal(t, 2, ranked[0].TotalReviews)
}

func TestRankManagers_ViewDropsCachedRanking(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	f := e.fixture

	_, err := e.managers.RankManagers(ctx, nil)
	require.NoError(t, err)
	_, cached := e.kv.data[rankedManagersKey]
	require.True(t, cached)

	_, err = e.houses.RecordView(ctx, f.HouseA.ID)
	require.NoError(t, err)
	_, cached = e.kv.data[rankedManagersKey]
	assert.False(t, cached)

	ranked, err := e.managers.RankManagers(ctx, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	var views *models.HouseView
	for _, h := range ranked[0].Houses {
		if h.ID == f.HouseA.ID {
			views = h.HouseViews
		}
	}
	require.NotNil(t, views)
	assert.Equal(t, 1, views.Counts)
}

func TestRankManagers_FavoritesPerViewer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	viewer := e.viewer(t)
	_, err := e.houses.AddFavorite(ctx, viewer, e.fixture.HouseA.ID)
	require.NoError(t, err)
	viewer = e.viewer(t)

	mine, err := e.managers.RankManagers(ctx, viewer)
	require.NoError(t, err)
	anon, err := e.managers.RankManagers(ctx, nil)
	require.NoError(t, err)

	isFav := func(summaries []types.ManagerSummary, houseID uint) bool {
		for _, h := range summaries[0].Houses {
			if h.ID == houseID {
				return h.IsFavorite
			}
		}
		return false
	}
	assert.True(t, isFav(mine, e.fixture.HouseA.ID))
	assert.False(t, isFav(anon, e.fixture.HouseA.ID), "cached ranking must not leak another viewer's favorites")
}

func TestPaginateManagers(t *testing.T) {
	e := newEnv(t)

	page, err := e.managers.PaginateManagers(context.Background(), 0, 0, nil)
	require.NoError(t, err)
	require.Len(t, page.Managers, 1)
	assert.Equal(t, types.Pagination{Total: 1, CurrentPage: 1, PerPage: 10, LastPage: 1}, page.Pagination)
	assert.Len(t, page.Managers[0].Houses, 2)
}

func TestListHouses_SeededOrder(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	f := e.fixture

	extra := models.House{BuildingID: f.Active.ID, Category: "studio", Rent: 15000, Vacancies: 1}
	require.NoError(t, e.db.Create(&extra).Error)

	first, err := e.houses.ListHouses(ctx, 1, 1, 99, nil)
	require.NoError(t, err)
	again, err := e.houses.ListHouses(ctx, 1, 1, 99, nil)
	require.NoError(t, err)
	second, err := e.houses.ListHouses(ctx, 2, 1, 99, nil)
	require.NoError(t, err)

	require.Len(t, first.Houses, 1)
	require.Len(t, second.Houses, 1)
	assert.Equal(t, first.Houses[0].ID, again.Houses[0].ID)
	assert.NotEqual(t, first.Houses[0].ID, second.Houses[0].ID)
	assert.Equal(t, types.Pagination{Total: 2, CurrentPage: 1, PerPage: 1, LastPage: 2}, first.Pagination)
}

func TestRecommendedHouses(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	anon, err := e.houses.RecommendedHouses(ctx, nil)
	require.NoError(t, err)
	require.Len(t, anon, 1)
	assert.Equal(t, e.fixture.HouseA.ID, anon[0].ID)

	_, err = e.users.UpdatePreferences(ctx, e.fixture.User.ID, PreferenceRequest{MinRent: 20000, MaxRent: 40000})
	require.NoError(t, err)

	matched, err := e.houses.RecommendedHouses(ctx, e.viewer(t))
	require.NoError(t, err)
	assert.Empty(t, matched, "only the vacant house is out of range")
}

func TestSearchByKeyword(t *testing.T) {
	e := newEnv(t)

	_, err := e.houses.SearchByKeyword(context.Background(), "  ", nil)
	assert.ErrorIs(t, err, ErrValidation)

	found, err := e.houses.SearchByKeyword(context.Background(), "Block A", nil)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestFavorites(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	viewer := e.viewer(t)

	_, err := e.houses.AddFavorite(ctx, viewer, e.fixture.HouseA.ID)
	require.NoError(t, err)
	_, err = e.houses.AddFavorite(ctx, viewer, e.fixture.HouseA.ID)
	require.NoError(t, err, "duplicate favorite is not an error")

	favs, err := e.houses.Favorites(ctx, viewer)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.True(t, favs[0].IsFavorite)

	require.NoError(t, e.houses.RemoveFavorite(ctx, viewer, e.fixture.HouseA.ID))
	assert.ErrorIs(t, e.houses.RemoveFavorite(ctx, viewer, e.fixture.HouseA.ID), ErrNotFound)

	_, err = e.houses.AddFavorite(ctx, viewer, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitEnquiry(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	viewer := e.viewer(t)

	enquiry, err := e.managers.SubmitEnquiry(ctx, viewer, EnquiryRequest{
		ManagerID: e.fixture.Manager.ID,
		HouseID:   e.fixture.HouseA.ID,
		Title:     "Viewing",
		Message:   "Can I view on <Saturday>?",
	})
	require.NoError(t, err)
	assert.NotZero(t, enquiry.ID)

	require.Len(t, e.mailer.sent, 1)
	assert.Equal(t, "jane@estates.test", e.mailer.sent[0].to)
	assert.Contains(t, e.mailer.sent[0].body, "&lt;Saturday&gt;")

	e.mailer.err = errSMTPDown
	_, err = e.managers.SubmitEnquiry(ctx, viewer, EnquiryRequest{
		ManagerID: e.fixture.Manager.ID,
		HouseID:   e.fixture.HouseA.ID,
		Title:     "Again",
		Message:   "Still there?",
	})
	assert.NoError(t, err, "mail failure does not lose the enquiry")

	_, err = e.managers.SubmitEnquiry(ctx, viewer, EnquiryRequest{ManagerID: 9999, HouseID: e.fixture.HouseA.ID, Title: "x", Message: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitComplaint(t *testing.T) {
	e := newEnv(t)

	complaint, err := e.managers.SubmitComplaint(context.Background(), e.viewer(t), ComplaintRequest{
		ManagerID: e.fixture.Manager.ID,
		Message:   "No water since Monday",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintOpen, complaint.Status)
	assert.Len(t, e.mailer.sent, 1)

	_, err = e.managers.SubmitComplaint(context.Background(), e.viewer(t), ComplaintRequest{ManagerID: e.fixture.Manager.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateLocation(t *testing.T) {
	e := newEnv(t)

	user, err := e.users.UpdateLocation(context.Background(), e.fixture.User.ID, UpdateLocationRequest{Latitude: -1.3, Longitude: 36.8})
	require.NoError(t, err)
	assert.Equal(t, "Kilimani, Nairobi", user.LocationName)
	assert.Equal(t, 1, e.geocoder.calls)

	_, err = e.users.UpdateLocation(context.Background(), e.fixture.User.ID, UpdateLocationRequest{Latitude: 0, Longitude: 200})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfile(t *testing.T) {
	e := newEnv(t)
	searching := false

	user, err := e.users.UpdateProfile(context.Background(), e.fixture.User.ID, UpdateProfileRequest{
		Name:              " Amina W ",
		Phone:             "+254712345678",
		ActivelySearching: &searching,
	})
	require.NoError(t, err)
	assert.Equal(t, "Amina W", user.Name)
	assert.False(t, user.ActivelySearching)
}

func TestUploadProfileImage(t *testing.T) {
	e := newEnv(t)
	header := &multipart.FileHeader{
		Filename: "me.PNG",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}

	user, err := e.users.UploadProfileImage(context.Background(), e.fixture.User.ID, nil, header)
	require.NoError(t, err)
	require.Len(t, e.images.uploaded, 1)
	assert.True(t, strings.HasPrefix(e.images.uploaded[0], "profile-images/"))
	assert.True(t, strings.HasSuffix(e.images.uploaded[0], ".png"))
	assert.Equal(t, "https://images.test/"+e.images.uploaded[0], user.ProfileImage)
}

func TestCheckImage(t *testing.T) {
	_, err := checkImage(&multipart.FileHeader{Filename: "doc.pdf", Size: 10, Header: textproto.MIMEHeader{}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = checkImage(&multipart.FileHeader{Filename: "big.jpg", Size: maxProfileImageSize + 1, Header: textproto.MIMEHeader{}})
	assert.ErrorIs(t, err, ErrValidation)

	ct, err := checkImage(&multipart.FileHeader{Filename: "ok.jpeg", Size: 10, Header: textproto.MIMEHeader{}})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
}

func TestChangePassword(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	session := e.login(t)

	err := e.users.ChangePassword(ctx, e.fixture.User.ID, ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "new-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, e.users.ChangePassword(ctx, e.fixture.User.ID, ChangePasswordRequest{CurrentPassword: "secret-pass", NewPassword: "new-password"}))

	res, err := e.auth.Authorize(ctx, session.Token)
	require.NoError(t, err)
	assert.False(t, res.Authorized)

	_, err = e.auth.Login(ctx, LoginRequest{Email: "tenant@example.test", Password: "new-password"})
	assert.NoError(t, err)
}

func TestSendFeedback(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.users.SendFeedback(ctx, e.fixture.User.ID, FeedbackRequest{Feedback: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	fb, err := e.users.SendFeedback(ctx, e.fixture.User.ID, FeedbackRequest{Feedback: " Search is slow ", Category: "app"})
	require.NoError(t, err)
	assert.NotZero(t, fb.ID)

	var stored models.Feedback
	require.NoError(t, e.db.First(&stored, fb.ID).Error)
	assert.Equal(t, e.fixture.User.ID, stored.UserID)
	assert.Equal(t, "Search is slow", stored.Feedback)
	assert.Equal(t, "app", stored.Category)
}

func TestNotifications_GroupedByDay(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	me := models.UserRecipient(e.fixture.User.ID)
	other := testutil.CreateUser(t, e.db, "other@example.test", "secret-pass")
	at := func(day, hour int) time.Time { return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC) }

	for _, n := range []models.Notification{
		{Recipient: me, Title: "Rent due", Message: "Pay by Friday", CreatedAt: at(12, 10)},
		{Recipient: models.NotificationBroadcast, Title: "Maintenance", Message: "Water off", CreatedAt: at(12, 8)},
		{Recipient: models.NotificationBroadcast, Title: "New listings", Message: "Kilimani", CreatedAt: at(11, 12)},
		{Recipient: me, Title: "Welcome", Message: "Hello", CreatedAt: at(10, 12)},
		{Recipient: models.UserRecipient(other.ID), Title: "Not yours", Message: "x", CreatedAt: at(12, 9)},
	} {
		n := n
		require.NoError(t, e.db.Create(&n).Error)
	}

	first, err := e.users.Notifications(ctx, e.fixture.User.ID, 1, 2)
	require.NoError(t, err)
	require.Len(t, first.Groups, 2)
	assert.Equal(t, "2026-03-12", first.Groups[0].Date)
	require.Len(t, first.Groups[0].Notifications, 2)
	assert.Equal(t, "Rent due", first.Groups[0].Notifications[0].Title)
	assert.Equal(t, "Maintenance", first.Groups[0].Notifications[1].Title)
	assert.Equal(t, "2026-03-11", first.Groups[1].Date)
	assert.Equal(t, int64(3), first.Pagination.Total)
	assert.Equal(t, 2, first.Pagination.LastPage)

	second, err := e.users.Notifications(ctx, e.fixture.User.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, second.Groups, 1)
	assert.Equal(t, "2026-03-10", second.Groups[0].Date)

	beyond, err := e.users.Notifications(ctx, e.fixture.User.ID, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Groups)
}

func TestDeleteAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	session := e.login(t)

	require.NoError(t, e.users.DeleteAccount(ctx, e.fixture.User.ID))

	res, err := e.auth.Authorize(ctx, session.Token)
	require.NoError(t, err)
	assert.False(t, res.Authorized)

	_, err = e.auth.Login(ctx, LoginRequest{Email: "tenant@example.test", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	stored, err := e.auth.GetUserByID(ctx, e.fixture.User.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusDeleted, stored.Status)
	assert.Nil(t, stored.RememberToken)

	assert.ErrorIs(t, e.users.DeleteAccount(ctx, 9999), ErrNotFound)
}

func TestAuthorize_InactiveAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	session := e.login(t)

	require.NoError(t, e.db.Model(&models.User{}).
		Where("id = ?", e.fixture.User.ID).
		Update("status", models.UserStatusDeleted).Error)

	res, err := e.auth.Authorize(ctx, session.Token)
	require.NoError(t, err)
	assert.False(t, res.Authorized)
}
