package application

import (
	"context"
	"sort"
	"testing"
	"time"

	bookingDomain "github.com/firstoffice/service-office/internal/domain/booking"
	cityDomain "github.com/firstoffice/service-office/internal/domain/city"
	officeDomain "github.com/firstoffice/service-office/internal/domain/office"
	"github.com/firstoffice/service-office/internal/domain/shared"
	"github.com/firstoffice/service-office/internal/events"
	"github.com/firstoffice/service-office/internal/platform/kafka"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- In-memory fakes ---

type memBookingRepo struct {
	bookings map[uuid.UUID]*bookingDomain.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[uuid.UUID]*bookingDomain.Booking)}
}

func (r *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	bk, ok := r.bookings[id]
	if !ok {
		return nil, shared.NewNotFoundError("booking", id.String())
	}
	return bk, nil
}

func (r *memBookingRepo) FindByTrxIDAndPhone(_ context.Context, trxID, phone string) (*bookingDomain.Booking, error) {
	for _, bk := range r.bookings {
		if bk.BookingTrxID() == trxID && bk.PhoneNumber() == phone {
			return bk, nil
		}
	}
	return nil, shared.NewNotFoundError("booking", trxID)
}

func (r *memBookingRepo) ListAll(_ context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	all := make([]*bookingDomain.Booking, 0, len(r.bookings))
	for _, bk := range r.bookings {
		all = append(all, bk)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].BookingTrxID() < all[j].BookingTrxID() })

	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (r *memBookingRepo) Save(_ context.Context, bk *bookingDomain.Booking) error {
	r.bookings[bk.ID()] = bk
	return nil
}

func (r *memBookingRepo) Update(_ context.Context, bk *bookingDomain.Booking) error {
	if _, ok := r.bookings[bk.ID()]; !ok {
		return shared.NewNotFoundError("booking", bk.ID().String())
	}
	r.bookings[bk.ID()] = bk
	return nil
}

func (r *memBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.bookings[id]; !ok {
		return shared.NewNotFoundError("booking", id.String())
	}
	delete(r.bookings, id)
	return nil
}

type memOfficeRepo struct {
	offices map[uuid.UUID]*officeDomain.Office
}

func newMemOfficeRepo() *memOfficeRepo {
	return &memOfficeRepo{offices: make(map[uuid.UUID]*officeDomain.Office)}
}

func (r *memOfficeRepo) FindByID(_ context.Context, id uuid.UUID) (*officeDomain.Office, error) {
	off, ok := r.offices[id]
	if !ok {
		return nil, shared.NewNotFoundError("office space", id.String())
	}
	return off, nil
}

func (r *memOfficeRepo) FindBySlug(_ context.Context, slug string) (*officeDomain.Office, error) {
	for _, off := range r.offices {
		if off.Slug() == slug {
			return off, nil
		}
	}
	return nil, shared.NewNotFoundError("office space", slug)
}

func (r *memOfficeRepo) ListAll(_ context.Context, page, limit int) ([]*officeDomain.Office, int64, error) {
	all := make([]*officeDomain.Office, 0, len(r.offices))
	for _, off := range r.offices {
		all = append(all, off)
	}
	return all, int64(len(all)), nil
}

func (r *memOfficeRepo) ListByCityID(_ context.Context, cityID uuid.UUID) ([]*officeDomain.Office, error) {
	var result []*officeDomain.Office
	for _, off := range r.offices {
		if off.CityID() == cityID {
			result = append(result, off)
		}
	}
	return result, nil
}

func (r *memOfficeRepo) Save(_ context.Context, off *officeDomain.Office) error {
	r.offices[off.ID()] = off
	return nil
}

type memCityRepo struct {
	cities map[uuid.UUID]*cityDomain.City
}

func newMemCityRepo() *memCityRepo {
	return &memCityRepo{cities: make(map[uuid.UUID]*cityDomain.City)}
}

func (r *memCityRepo) FindByID(_ context.Context, id uuid.UUID) (*cityDomain.City, error) {
	ct, ok := r.cities[id]
	if !ok {
		return nil, shared.NewNotFoundError("city", id.String())
	}
	return ct, nil
}

func (r *memCityRepo) FindBySlug(_ context.Context, slug string) (*cityDomain.City, error) {
	for _, ct := range r.cities {
		if ct.Slug() == slug {
			return ct, nil
		}
	}
	return nil, shared.NewNotFoundError("city", slug)
}

func (r *memCityRepo) ListAll(_ context.Context) ([]*cityDomain.City, error) {
	all := make([]*cityDomain.City, 0, len(r.cities))
	for _, ct := range r.cities {
		all = append(all, ct)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all, nil
}

func (r *memCityRepo) Save(_ context.Context, ct *cityDomain.City) error {
	r.cities[ct.ID()] = ct
	return nil
}

// recordingPublisher captures published events instead of hitting Kafka.
type recordingPublisher struct {
	published []publishedEvent
}

type publishedEvent struct {
	Topic string
	Event kafka.CloudEvent
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic string, event kafka.CloudEvent) error {
	p.published = append(p.published, publishedEvent{Topic: topic, Event: event})
	return nil
}

func (p *recordingPublisher) lastType() string {
	if len(p.published) == 0 {
		return ""
	}
	return p.published[len(p.published)-1].Event.Type
}

// --- Fixture ---

type serviceFixture struct {
	service  *BookingService
	bookings *memBookingRepo
	offices  *memOfficeRepo
	cities   *memCityRepo
	producer *recordingPublisher
	office   *officeDomain.Office
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	cities := newMemCityRepo()
	ct, err := cityDomain.NewCity("Jakarta", "jakarta", "cities/jakarta.png")
	require.NoError(t, err)
	require.NoError(t, cities.Save(context.Background(), ct))

	offices := newMemOfficeRepo()
	off, err := officeDomain.NewOffice(
		ct.ID(),
		"Sky Tower Workspace", "sky-tower-workspace",
		"Jl. Sudirman 1", "A bright workspace",
		"thumbnails/sky-tower.png",
		[]string{"photos/1.png"},
		[]string{"Fast WiFi"},
		350000, 20,
	)
	require.NoError(t, err)
	require.NoError(t, offices.Save(context.Background(), off))

	bookings := newMemBookingRepo()
	producer := &recordingPublisher{}
	service := NewBookingService(
		bookings, offices, cities,
		bookingDomain.NewStandardPricingStrategy(),
		producer, zap.NewNop(),
	)

	return &serviceFixture{
		service:  service,
		bookings: bookings,
		offices:  offices,
		cities:   cities,
		producer: producer,
		office:   off,
	}
}

func (f *serviceFixture) createBooking(t *testing.T) *BookingDTO {
	t.Helper()
	dto, err := f.service.CreateBooking(context.Background(), CreateBookingRequest{
		Name:          "Putri Ayu",
		PhoneNumber:   "081234567890",
		StartedAt:     "2024-07-01",
		OfficeSpaceID: f.office.ID(),
	})
	require.NoError(t, err)
	return dto
}

// --- Tests ---

func TestCreateBooking(t *testing.T) {
	f := newServiceFixture(t)

	dto := f.createBooking(t)

	assert.Regexp(t, `^FO-`, dto.BookingTrxID)
	assert.Equal(t, "2024-07-01", dto.StartedAt)
	assert.Equal(t, "2024-07-20", dto.EndedAt)
	assert.Equal(t, 20, dto.Duration)
	assert.Equal(t, int64(7000000), dto.TotalAmount, "350000/day x 20 days")
	assert.False(t, dto.IsPaid)
	assert.Equal(t, "Sky Tower Workspace", dto.Office.Name)
	assert.Equal(t, "Jakarta", dto.Office.City.Name)

	require.Len(t, f.producer.published, 1)
	assert.Equal(t, events.TopicBookingEvents, f.producer.published[0].Topic)
	assert.Equal(t, events.BookingCreated, f.producer.lastType())
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.CreateBooking(context.Background(), CreateBookingRequest{
		Name:          "Putri Ayu",
		PhoneNumber:   "081234567890",
		StartedAt:     "01/07/2024",
		OfficeSpaceID: f.office.ID(),
	})
	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, f.producer.published)
}

func TestCreateBooking_UnknownOffice(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.CreateBooking(context.Background(), CreateBookingRequest{
		Name:          "Putri Ayu",
		PhoneNumber:   "081234567890",
		StartedAt:     "2024-07-01",
		OfficeSpaceID: uuid.New(),
	})
	var notFoundErr *shared.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestCheckBooking(t *testing.T) {
	f := newServiceFixture(t)
	created := f.createBooking(t)

	dto, err := f.service.CheckBooking(context.Background(), CheckBookingRequest{
		BookingTrxID: created.BookingTrxID,
		PhoneNumber:  "081234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, dto.ID)
	assert.Equal(t, "Sky Tower Workspace", dto.Office.Name)
}

func TestCheckBooking_WrongPhoneNumber(t *testing.T) {
	f := newServiceFixture(t)
	created := f.createBooking(t)

	_, err := f.service.CheckBooking(context.Background(), CheckBookingRequest{
		BookingTrxID: created.BookingTrxID,
		PhoneNumber:  "000000000000",
	})
	var notFoundErr *shared.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestUpdateBooking_RecomputesDerivedFields(t *testing.T) {
	f := newServiceFixture(t)
	created := f.createBooking(t)

	dto, err := f.service.UpdateBooking(context.Background(), created.ID, UpdateBookingRequest{
		Name:        "Dewi Lestari",
		PhoneNumber: "089876543210",
		StartedAt:   "2024-08-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dewi Lestari", dto.Name)
	assert.Equal(t, "2024-08-01", dto.StartedAt)
	assert.Equal(t, "2024-08-20", dto.EndedAt, "end date recomputed from the new start")
	assert.Equal(t, 20, dto.Duration)
	assert.Equal(t, int64(7000000), dto.TotalAmount)

	assert.Equal(t, events.BookingUpdated, f.producer.lastType())
}

func TestUpdateBooking_NotFound(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.UpdateBooking(context.Background(), uuid.New(), UpdateBookingRequest{
		Name:        "Dewi Lestari",
		PhoneNumber: "089876543210",
		StartedAt:   "2024-08-01",
	})
	var notFoundErr *shared.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestCancelBooking(t *testing.T) {
	f := newServiceFixture(t)
	created := f.createBooking(t)

	require.NoError(t, f.service.CancelBooking(context.Background(), created.ID))

	_, err := f.service.CheckBooking(context.Background(), CheckBookingRequest{
		BookingTrxID: created.BookingTrxID,
		PhoneNumber:  "081234567890",
	})
	var notFoundErr *shared.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	assert.Equal(t, events.BookingCancelled, f.producer.lastType())

	// Cancelling twice is a not-found, not a silent success.
	err = f.service.CancelBooking(context.Background(), created.ID)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestMarkBookingPaid(t *testing.T) {
	f := newServiceFixture(t)
	created := f.createBooking(t)

	require.NoError(t, f.service.MarkBookingPaid(context.Background(), created.ID))

	dto, err := f.service.CheckBooking(context.Background(), CheckBookingRequest{
		BookingTrxID: created.BookingTrxID,
		PhoneNumber:  "081234567890",
	})
	require.NoError(t, err)
	assert.True(t, dto.IsPaid)

	// A duplicate payment confirmation is a conflict.
	err = f.service.MarkBookingPaid(context.Background(), created.ID)
	var conflictErr *shared.ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestListAllBookings(t *testing.T) {
	f := newServiceFixture(t)
	for i := 0; i < 3; i++ {
		f.createBooking(t)
	}

	result, err := f.service.ListAllBookings(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(3), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 2, result.Limit)
}

func TestCloudEventEnvelope(t *testing.T) {
	f := newServiceFixture(t)
	f.createBooking(t)

	require.Len(t, f.producer.published, 1)
	ce := f.producer.published[0].Event

	assert.NotEmpty(t, ce.ID)
	assert.Equal(t, "service-office", ce.Source)
	assert.Equal(t, "1.0", ce.SpecVersion)
	assert.WithinDuration(t, time.Now().UTC(), ce.Time, time.Minute)

	var data events.BookingCreatedEvent
	require.NoError(t, ce.ParseData(&data))
	assert.Equal(t, int64(7000000), data.TotalAmount)
}
