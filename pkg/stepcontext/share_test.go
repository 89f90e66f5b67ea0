package stepcontext_test

import (
	"errors"
	"testing"

	"github.com/semitest/stl-go/pkg/log"
	"github.com/semitest/stl-go/pkg/sitedata"
	"github.com/semitest/stl-go/pkg/stepcontext"
	"github.com/semitest/stl-go/pkg/stepcontext/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShareSiteDataRoundTrip(t *testing.T) {
	cfg := testConfig()
	events := recordResults(t, &cfg)
	c := newTestContext(t, cfg)

	data, err := sitedata.NewFromSites([]int{0, 1, 2}, []float64{0.5, 1.5, 2.5})
	require.NoError(t, err)
	require.NoError(t, stepcontext.ShareSiteData(c, "trim", data))

	got, err := stepcontext.GetSharedSiteData[float64](c, "trim")
	require.NoError(t, err)

	assert.Equal(t, c.SiteNumbers(), got.SiteNumbers())
	assert.Equal(t, data.ToMap(), got.ToMap())

	require.Len(t, *events, 2)
	assert.Equal(t, log.KindShare, (*events)[0].Kind)
	assert.Equal(t, log.KindRetrieve, (*events)[1].Kind)
	assert.Equal(t, "trim", (*events)[0].Share.ID)
	assert.Equal(t, 3, (*events)[0].Share.Sites)
	assert.Positive(t, (*events)[0].Share.Size)
}

func TestShareSiteDataResolvesSystemValue(t *testing.T) {
	c := newTestContext(t, testConfig())

	require.NoError(t, stepcontext.ShareSiteData(c, "limit", sitedata.NewSystem(int32(-4))))

	got, err := stepcontext.GetSharedSiteData[int32](c, "limit")
	require.NoError(t, err)
	assert.Equal(t, map[int]int32{0: -4, 1: -4, 2: -4}, got.ToMap())
}

func TestShareSiteDataMissingSite(t *testing.T) {
	c := newTestContext(t, testConfig())

	err := stepcontext.ShareSiteData(c, "trim", sitedata.New([]float64{1}))
	require.ErrorIs(t, err, sitedata.ErrKeyNotFound)

	ids, err := c.Store().IDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestGetSharedDataNotFound(t *testing.T) {
	c := newTestContext(t, testConfig())

	_, err := stepcontext.GetSharedSiteData[float64](c, "nope")
	assert.ErrorIs(t, err, stepcontext.ErrDataNotFound)

	_, err = stepcontext.GetSharedPinSiteData[float64](c, "nope")
	assert.ErrorIs(t, err, stepcontext.ErrDataNotFound)
}

func TestGetSharedSiteDataSiteCountMismatch(t *testing.T) {
	c := newTestContext(t, testConfig())
	require.NoError(t, stepcontext.ShareSiteData(c, "trim", sitedata.NewSystem(1.0)))

	fewer, err := c.WithSites([]int{0, 1})
	require.NoError(t, err)

	_, err = stepcontext.GetSharedSiteData[float64](fewer, "trim")
	require.ErrorIs(t, err, stepcontext.ErrSharedDataSize)
	assert.Contains(t, err.Error(), "3 values for 2 active sites")

	_, err = stepcontext.GetSharedPinSiteData[float64](fewer, "trim")
	assert.Error(t, err)
}

func TestSharePinSiteDataRoundTrip(t *testing.T) {
	c := newTestContext(t, testConfig())

	vcc, err := sitedata.NewFromSites([]int{0, 1, 2}, []float64{1.0, 1.1, 1.2})
	require.NoError(t, err)
	data, err := sitedata.NewFromSiteData(
		[]string{"VCC1", "SystemSupply"},
		[]*sitedata.SiteData[float64]{vcc, sitedata.NewSystem(-22.5)},
	)
	require.NoError(t, err)

	require.NoError(t, stepcontext.SharePinSiteData(c, "supply", data))

	got, err := stepcontext.GetSharedPinSiteData[float64](c, "supply")
	require.NoError(t, err)

	assert.Equal(t, []string{"VCC1", "SystemSupply"}, got.PinNames())
	assert.True(t, got.IsSystemPin("SystemSupply"))
	assert.False(t, got.IsSystemPin("VCC1"))
	for _, site := range c.SiteNumbers() {
		want, err := data.ExtractSite(site)
		require.NoError(t, err)
		have, err := got.ExtractSite(site)
		require.NoError(t, err)
		assert.Equal(t, want, have, "site %d", site)
	}
}

func TestSharedDataCrossesContexts(t *testing.T) {
	store := stepcontext.NewMemoryStore()

	producerCfg := testConfig()
	producerCfg.Store = store
	producer := newTestContext(t, producerCfg)

	consumerCfg := testConfig()
	consumerCfg.Name = "trim"
	consumerCfg.Store = store
	consumer := newTestContext(t, consumerCfg)

	data, err := sitedata.NewPinSiteGrid([]string{"VDET"}, []int{2, 0, 1}, [][]int{{20, 0, 10}})
	require.NoError(t, err)
	require.NoError(t, stepcontext.SharePinSiteData(producer, "offsets", data))

	got, err := stepcontext.GetSharedPinSiteData[int](consumer, "offsets")
	require.NoError(t, err)
	v, err := got.GetValue(1, "VDET")
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestShareReportsStoreFailure(t *testing.T) {
	store := mocks.NewMockStore(t)
	boom := errors.New("disk full")
	store.EXPECT().Set("trim", mock.Anything).Return(boom)

	cfg := testConfig()
	cfg.Store = store
	events := recordResults(t, &cfg)
	c := newTestContext(t, cfg)

	err := stepcontext.ShareSiteData(c, "trim", sitedata.NewSystem(1.0))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `store shared data "trim"`)

	require.Len(t, *events, 1)
	assert.Equal(t, log.KindError, (*events)[0].Kind)
}

func TestShareWritesEncodedBytesToStore(t *testing.T) {
	store := mocks.NewMockStore(t)
	var stored []byte
	store.EXPECT().Set("trim", mock.Anything).Run(func(_ string, data []byte) {
		stored = data
	}).Return(nil)
	store.EXPECT().Get("trim").RunAndReturn(func(string) ([]byte, error) {
		return stored, nil
	})

	cfg := testConfig()
	cfg.Store = store
	c := newTestContext(t, cfg)

	require.NoError(t, stepcontext.ShareSiteData(c, "trim", sitedata.New([]uint16{1, 2, 3})))
	assert.NotEmpty(t, stored)

	got, err := stepcontext.GetSharedSiteData[uint16](c, "trim")
	require.NoError(t, err)
	assert.Equal(t, map[int]uint16{0: 1, 1: 2, 2: 3}, got.ToMap())
}

func TestGetSharedRejectsCorruptData(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Get("trim").Return([]byte{0xff}, nil)

	cfg := testConfig()
	cfg.Store = store
	c := newTestContext(t, cfg)

	_, err := stepcontext.GetSharedSiteData[float64](c, "trim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `decode shared data "trim"`)
}
