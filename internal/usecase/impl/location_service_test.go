package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"laundrify/config"
	"laundrify/internal/domain/entity"
	"laundrify/internal/domain/service"
	mockService "laundrify/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func gurugramPlace() *entity.Place {
	return &entity.Place{
		FormattedAddress: "A-45, MG Road, Sector 69, Gurugram, Haryana 122101, India",
		Location:         &entity.Coordinates{Lat: 28.3960, Lng: 77.0370},
		Components: []entity.AddressComponent{
			{LongText: "A-45", Types: []string{"street_number"}},
			{LongText: "MG Road", Types: []string{"route"}},
			{LongText: "Sector 69", Types: []string{"sublocality_level_1"}},
			{LongText: "Gurugram", Types: []string{"locality"}},
			{LongText: "Haryana", Types: []string{"administrative_area_level_1"}},
			{LongText: "122101", Types: []string{"postal_code"}},
		},
	}
}

func newLocationConfig() *config.Config {
	return &config.Config{
		Location: &config.LocationConfig{
			TargetAccuracyMeters: 20,
			HighAccuracyAttempts: 2,
			FastTimeout:          time.Second,
			AccurateTimeout:      time.Second,
			FallbackLabel:        "Gurugram (approximate)",
			FallbackLat:          28.4595,
			FallbackLng:          77.0266,
		},
		Availability: &config.AvailabilityConfig{Debounce: 40 * time.Millisecond},
	}
}

func TestLocationService_DetectLocation_StopsAtTargetAccuracy(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockPosition := mockService.NewMockPositionSource(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	svc := NewLocationService(mockGateway, mockPosition, mockChecker, newLocationConfig(), newTestLogger())

	coarse := &entity.GeoFix{Coordinates: entity.Coordinates{Lat: 28.39, Lng: 77.03}, Accuracy: 150}
	precise := &entity.GeoFix{Coordinates: entity.Coordinates{Lat: 28.3960, Lng: 77.0370}, Accuracy: 8}

	mockPosition.EXPECT().Position(mock.Anything, false).Return(coarse, nil).Once()
	// The first high-accuracy fix already beats the target, so the second
	// attempt must never happen.
	mockPosition.EXPECT().Position(mock.Anything, true).Return(precise, nil).Once()

	mockGateway.EXPECT().
		ReverseGeocode(mock.Anything, precise.Coordinates).
		Return(gurugramPlace(), nil)

	mockChecker.EXPECT().
		CheckAvailability(mock.Anything, mock.AnythingOfType("service.AvailabilityQuery")).
		Return(&entity.ServiceAvailability{IsAvailable: true}, nil)

	resolved, err := svc.DetectLocation(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resolved.Parsed)
	assert.Equal(t, "A-45", resolved.Parsed.HouseNumber)
	assert.Equal(t, "Sector 69", resolved.Parsed.Area)
	assert.True(t, resolved.Validation.IsValid)
	require.NotNil(t, resolved.Availability)
	assert.True(t, resolved.Availability.IsAvailable)
}

func TestLocationService_DetectLocation_FallsBackWhenPositioningFails(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockPosition := mockService.NewMockPositionSource(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	cfg := newLocationConfig()
	svc := NewLocationService(mockGateway, mockPosition, mockChecker, cfg, newTestLogger())

	mockPosition.EXPECT().Position(mock.Anything, false).Return(nil, assert.AnError)
	mockPosition.EXPECT().Position(mock.Anything, true).Return(nil, assert.AnError)

	fallback := entity.Coordinates{Lat: cfg.Location.FallbackLat, Lng: cfg.Location.FallbackLng}
	mockGateway.EXPECT().
		ReverseGeocode(mock.Anything, fallback).
		Return(gurugramPlace(), nil)

	mockChecker.EXPECT().
		CheckAvailability(mock.Anything, mock.AnythingOfType("service.AvailabilityQuery")).
		Return(&entity.ServiceAvailability{IsAvailable: true}, nil)

	resolved, err := svc.DetectLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Gurugram (approximate)", resolved.Place.DisplayName)
}

func TestLocationService_DetectLocation_NoPositionSource(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	cfg := newLocationConfig()
	svc := NewLocationService(mockGateway, nil, mockChecker, cfg, newTestLogger())

	fallback := entity.Coordinates{Lat: cfg.Location.FallbackLat, Lng: cfg.Location.FallbackLng}
	mockGateway.EXPECT().
		ReverseGeocode(mock.Anything, fallback).
		Return(gurugramPlace(), nil)

	mockChecker.EXPECT().
		CheckAvailability(mock.Anything, mock.AnythingOfType("service.AvailabilityQuery")).
		Return(&entity.ServiceAvailability{IsAvailable: true}, nil)

	resolved, err := svc.DetectLocation(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resolved.Place)
}

func TestLocationService_ResolveCoordinates_AvailabilityFailureIsNotFatal(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	svc := NewLocationService(mockGateway, nil, mockChecker, newLocationConfig(), newTestLogger())

	coords := entity.Coordinates{Lat: 28.3960, Lng: 77.0370}
	mockGateway.EXPECT().
		ReverseGeocode(mock.Anything, coords).
		Return(gurugramPlace(), nil)

	mockChecker.EXPECT().
		CheckAvailability(mock.Anything, mock.AnythingOfType("service.AvailabilityQuery")).
		Return(nil, assert.AnError)

	resolved, err := svc.ResolveCoordinates(context.Background(), coords)
	require.NoError(t, err)
	assert.Nil(t, resolved.Availability)
	assert.Equal(t, "MG Road", resolved.Parsed.Street)
}

func TestLocationService_Suggest_DelegatesToGateway(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	svc := NewLocationService(mockGateway, nil, mockChecker, newLocationConfig(), newTestLogger())

	expected := []entity.Suggestion{{PlaceID: "p1", Text: "Sector 69, Gurugram"}}
	mockGateway.EXPECT().
		Suggest(mock.Anything, "sector 69", "tok").
		Return(expected)

	assert.Equal(t, expected, svc.Suggest(context.Background(), "sector 69", "tok"))
}

func TestLocationService_ResolveSuggestion_PropagatesError(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	svc := NewLocationService(mockGateway, nil, mockChecker, newLocationConfig(), newTestLogger())

	mockGateway.EXPECT().
		ResolveSuggestion(mock.Anything, "p1", "tok").
		Return(nil, assert.AnError)

	_, err := svc.ResolveSuggestion(context.Background(), "p1", "tok")
	assert.Error(t, err)
}

func TestLocationService_ScheduleAvailabilityCheck_Debounces(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	svc := NewLocationService(mockGateway, nil, mockChecker, newLocationConfig(), newTestLogger())

	var calls atomic.Int32
	mockChecker.EXPECT().
		CheckAvailability(mock.Anything, mock.AnythingOfType("service.AvailabilityQuery")).
		RunAndReturn(func(_ context.Context, query service.AvailabilityQuery) (*entity.ServiceAvailability, error) {
			calls.Add(1)
			assert.Equal(t, "122101", query.Pincode)
			return &entity.ServiceAvailability{IsAvailable: true}, nil
		})

	done := make(chan *entity.ServiceAvailability, 1)
	report := func(verdict *entity.ServiceAvailability, err error) {
		require.NoError(t, err)
		done <- verdict
	}

	// Rapid marker drags. Only the final position should be checked.
	svc.ScheduleAvailabilityCheck("session_1", service.AvailabilityQuery{Pincode: "110001"}, report)
	svc.ScheduleAvailabilityCheck("session_1", service.AvailabilityQuery{Pincode: "560034"}, report)
	svc.ScheduleAvailabilityCheck("session_1", service.AvailabilityQuery{Pincode: "122101"}, report)

	select {
	case verdict := <-done:
		assert.True(t, verdict.IsAvailable)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced check never fired")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLocationService_PrefillAddress_KeepsUserInput(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	svc := NewLocationService(mockGateway, nil, mockChecker, newLocationConfig(), newTestLogger())

	current := &entity.ParsedAddress{Street: "MG Road (near metro gate 2)"}
	merged, validation := svc.PrefillAddress("A-45, MG Road, Sector 69, Gurugram, Haryana, 122101", current)

	assert.Equal(t, "MG Road (near metro gate 2)", merged.Street)
	assert.Equal(t, "Sector 69", merged.Area)
	assert.Equal(t, "Gurugram", merged.City)
	assert.Equal(t, "122101", merged.PostalCode)
	assert.True(t, validation.IsValid)
}

func TestLocationService_PrefillAddress_ReportsMissingFields(t *testing.T) {
	mockGateway := mockService.NewMockGeocodeGateway(t)
	mockChecker := mockService.NewMockAvailabilityChecker(t)
	svc := NewLocationService(mockGateway, nil, mockChecker, newLocationConfig(), newTestLogger())

	merged, validation := svc.PrefillAddress("MG Road", nil)

	assert.Equal(t, "MG Road", merged.Street)
	assert.Equal(t, "MG Road", merged.Area)
	assert.False(t, validation.IsValid)
	assert.Contains(t, validation.MissingFields, "pincode")
	assert.NotContains(t, validation.MissingFields, "street")
}
