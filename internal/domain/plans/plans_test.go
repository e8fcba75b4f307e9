package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ask-astro/internal/middleware"
	"ask-astro/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup map[string]PlanID

func (s stubLookup) PlanOf(_ context.Context, userID string) (PlanID, error) {
	if userID == "broken" {
		return "", errors.New("db down")
	}
	if p, ok := s[userID]; ok {
		return p, nil
	}
	return PlanFree, nil
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	require.Len(t, c, 3)

	assert.Equal(t, PlanFree, c[0].ID)
	assert.Equal(t, 0, c[0].PriceINR)
	assert.Equal(t, 199, c[1].PriceINR)
	assert.True(t, c[1].Popular)
	assert.Equal(t, 499, c[2].PriceINR)

	assert.True(t, c[0].Includes(FeatureMoonPhaseTracker))
	assert.False(t, c[0].Includes(FeaturePersonalizedPredict))
	assert.True(t, c[1].Includes(FeatureTransitAnalysis))
	assert.False(t, c[1].Includes(FeatureRelationshipCompat))
	assert.True(t, c[2].Includes(FeatureVideoConsultations))
	assert.False(t, c[2].Includes(Feature("teleportation")))

	c[0].Name = "changed"
	assert.Equal(t, "Free", Catalog()[0].Name)
}

func TestResolver(t *testing.T) {
	r := NewResolver(stubLookup{"u-ess": PlanEssence, "u-odd": PlanID("legacy")}, false)
	ctx := context.Background()

	ok, err := r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "u-ess", Feature: string(FeatureTransitAnalysis)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "guest", Feature: string(FeatureCareerGuidance)})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "guest"})
	assert.Error(t, err)

	caps, err := r.Resolve(ctx, "u-odd")
	require.NoError(t, err)
	assert.Len(t, caps, len(Features()))
	assert.True(t, caps[string(FeatureDailyHoroscope)])
	assert.False(t, caps[string(FeatureCareerGuidance)])

	_, err = r.Resolve(ctx, "broken")
	assert.Error(t, err)
	_, err = r.Resolve(ctx, "")
	assert.Error(t, err)
}

func TestResolver_AllowAll(t *testing.T) {
	r := NewResolver(nil, true)

	caps, err := r.Resolve(context.Background(), "anyone")
	require.NoError(t, err)
	for _, fi := range Features() {
		assert.True(t, caps[string(fi.Feature)], fi.Feature)
	}

	ok, err := r.HasFeature(context.Background(), capabilities.CapabilityCheck{UserID: "anyone", Feature: "video_consultations"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHandlers(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	RegisterRoutes(r, NewResolver(stubLookup{"u-1": PlanCelestial}, false))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Essence", got[1].Name)
	assert.Len(t, got[1].Features, 8)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me/capabilities", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/me/capabilities", nil)
	req.Header.Set("X-Debug-User-ID", "u-1")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var caps capabilitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &caps))
	assert.True(t, caps.Capabilities["video_consultations"])
}
