package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-analytics/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleProfiles() []domain.ScoredProfile {
	return []domain.ScoredProfile{
		{
			CustomerProfile: domain.CustomerProfile{
				CustomerID:   "A",
				LastPurchase: time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC),
				Recency:      5,
				Frequency:    5,
				Monetary:     dec("1000"),
			},
			Scores:  domain.Scores{R: 5, F: 5, M: 5},
			Segment: domain.SegmentChampions,
		},
		{
			CustomerProfile: domain.CustomerProfile{
				CustomerID:   "C",
				LastPurchase: time.Date(2024, 5, 31, 14, 30, 0, 0, time.UTC),
				Recency:      29,
				Frequency:    2,
				Monetary:     dec("50"),
			},
			Scores:  domain.Scores{R: 3, F: 3, M: 3},
			Segment: domain.SegmentAverage,
		},
		{
			CustomerProfile: domain.CustomerProfile{
				CustomerID:   "B",
				LastPurchase: time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC),
				Recency:      731,
				Frequency:    1,
				Monetary:     dec("10.50"),
			},
			Scores:  domain.Scores{R: 1, F: 1, M: 1},
			Segment: domain.SegmentDormant,
		},
	}
}

func sampleReport() domain.SegmentReport {
	return domain.SegmentReport{
		Segments: []domain.SegmentSummary{
			{
				Segment:       domain.SegmentChampions,
				Customers:     1,
				RecencyMean:   5,
				FrequencyMean: 5,
				MonetaryMean:  dec("1000"),
				MonetaryTotal: dec("1000"),
				PctCustomers:  dec("25"),
				PctRevenue:    dec("84.7"),
				Recommendation: domain.Recommendation{
					Description: "Best customers",
					Action:      "Reward with a VIP programme",
					Priority:    domain.PriorityHigh,
				},
			},
			{
				Segment:       domain.SegmentLoyal,
				Customers:     2,
				RecencyMean:   12.33,
				FrequencyMean: 3.5,
				MonetaryMean:  dec("85.25"),
				MonetaryTotal: dec("170.5"),
				PctCustomers:  dec("50"),
				PctRevenue:    dec("14.4"),
				Recommendation: domain.Recommendation{
					Description: "Regular, engaged customers",
					Action:      "Upsell \"bundles\"",
					Priority:    domain.PriorityHigh,
				},
			},
			{
				Segment:       domain.SegmentDormant,
				Customers:     1,
				RecencyMean:   731,
				FrequencyMean: 1,
				MonetaryMean:  dec("10.5"),
				MonetaryTotal: dec("10.5"),
				PctCustomers:  dec("25"),
				PctRevenue:    dec("0.9"),
				Recommendation: domain.Recommendation{
					Description: "Customers inactive for a long time",
					Action:      "Win-back campaign",
					Priority:    domain.PriorityLow,
				},
			},
		},
		TotalCustomers: 4,
		TotalMonetary:  dec("1181"),
	}
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestWriteProfiles_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProfiles(&buf, sampleProfiles()))

	golden(t).Assert(t, "rfm_profiles", buf.Bytes())
}

func TestWriteSegmentReport_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSegmentReport(&buf, sampleReport()))

	golden(t).Assert(t, "rfm_segments", buf.Bytes())
}

func TestProfiles_RoundTrip(t *testing.T) {
	want := sampleProfiles()
	var buf bytes.Buffer
	require.NoError(t, WriteProfiles(&buf, want))

	got, err := ReadProfiles(&buf)

	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].CustomerID, got[i].CustomerID)
		assert.True(t, want[i].LastPurchase.Equal(got[i].LastPurchase))
		assert.Equal(t, want[i].Recency, got[i].Recency)
		assert.Equal(t, want[i].Frequency, got[i].Frequency)
		assert.True(t, want[i].Monetary.Equal(got[i].Monetary), "monetary %s != %s", want[i].Monetary, got[i].Monetary)
		assert.Equal(t, want[i].Scores, got[i].Scores)
		assert.Equal(t, want[i].Segment, got[i].Segment)
	}
}

func TestSegmentReport_RoundTrip(t *testing.T) {
	want := sampleReport()
	var buf bytes.Buffer
	require.NoError(t, WriteSegmentReport(&buf, want))

	got, err := ReadSegmentReport(&buf)

	require.NoError(t, err)
	assert.Equal(t, want.TotalCustomers, got.TotalCustomers)
	assert.True(t, want.TotalMonetary.Equal(got.TotalMonetary))
	require.Len(t, got.Segments, len(want.Segments))
	for i, w := range want.Segments {
		g := got.Segments[i]
		assert.Equal(t, w.Segment, g.Segment)
		assert.Equal(t, w.Customers, g.Customers)
		assert.Equal(t, w.RecencyMean, g.RecencyMean)
		assert.Equal(t, w.FrequencyMean, g.FrequencyMean)
		assert.True(t, w.MonetaryMean.Equal(g.MonetaryMean))
		assert.True(t, w.MonetaryTotal.Equal(g.MonetaryTotal))
		assert.True(t, w.PctCustomers.Equal(g.PctCustomers))
		assert.True(t, w.PctRevenue.Equal(g.PctRevenue))
		assert.Equal(t, w.Recommendation, g.Recommendation)
	}
}

func TestReadProfiles_Invalid(t *testing.T) {
	header := strings.Join(profileHeader, ",") + "\n"
	tests := []struct {
		name string
		body string
	}{
		{"wrong header", "id,last\nA,x\n"},
		{"bad recency", header + "A,2024-06-25T00:00:00Z,x,5,1000,5,5,5,555,15,Champions\n"},
		{"code mismatch", header + "A,2024-06-25T00:00:00Z,5,5,1000,5,5,5,554,15,Champions\n"},
		{"unknown segment", header + "A,2024-06-25T00:00:00Z,5,5,1000,5,5,5,555,15,Whales\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadProfiles(strings.NewReader(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestFileResultWriter_SaveRFM(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := NewFileResultWriter(dir, zerolog.Nop())
	result := &domain.RFMResult{
		Manifest: domain.RunManifest{
			RunID:         "run-1",
			GeneratedAt:   time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
			Source:        "transactions.csv",
			ReferenceDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			Transactions:  8,
			Customers:     3,
			TotalMonetary: dec("1060.5"),
		},
		Profiles: sampleProfiles(),
		Report:   sampleReport(),
	}

	require.NoError(t, w.SaveRFM(context.Background(), result))

	file, err := os.Open(filepath.Join(dir, ProfilesFile))
	require.NoError(t, err)
	defer file.Close()
	profiles, err := ReadProfiles(file)
	require.NoError(t, err)
	assert.Len(t, profiles, 3)

	raw, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	require.NoError(t, err)
	var manifest domain.RunManifest
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, "run-1", manifest.RunID)
	assert.True(t, manifest.TotalMonetary.Equal(dec("1060.5")))

	assert.FileExists(t, filepath.Join(dir, SegmentsFile))
}

func TestFileResultWriter_SaveKPI(t *testing.T) {
	dir := t.TempDir()
	w := NewFileResultWriter(dir, zerolog.Nop())
	report := &domain.KPIReport{
		Summary: domain.KPISummary{TotalRevenue: dec("130"), TotalOrders: 5},
		Revenue: []domain.PeriodRevenue{
			{Period: "2024-01", Revenue: dec("35")},
			{Period: "2024-02", Revenue: dec("65"), GrowthPct: decimal.NewNullDecimal(dec("85.71"))},
		},
		Cohorts: []domain.CohortRetention{
			{Cohort: "2024-01", Size: 2, Active: []int{2, 1}, RetentionPct: []float64{100, 50}},
			{Cohort: "2024-02", Size: 1, Active: []int{1}, RetentionPct: []float64{100}},
		},
	}

	require.NoError(t, w.SaveKPI(context.Background(), report))

	for _, table := range kpiTables {
		assert.FileExists(t, filepath.Join(dir, table.name))
	}
	revenue, err := os.ReadFile(filepath.Join(dir, "kpi_revenue.csv"))
	require.NoError(t, err)
	assert.Equal(t, "period,revenue,growth_pct\n2024-01,35,\n2024-02,65,85.71\n", string(revenue))

	cohorts, err := os.ReadFile(filepath.Join(dir, "kpi_cohorts.csv"))
	require.NoError(t, err)
	assert.Equal(t, "cohort,size,month_0,month_1\n2024-01,2,100,50\n2024-02,1,100,\n", string(cohorts))

	summary, err := os.ReadFile(filepath.Join(dir, KPISummaryFile))
	require.NoError(t, err)
	assert.Contains(t, string(summary), `"total_orders": 5`)
}

func TestFileResultWriter_SaveTransactions_ReadBack(t *testing.T) {
	dir := t.TempDir()
	w := NewFileResultWriter(dir, zerolog.Nop())
	want := []domain.Transaction{
		{
			OrderID:     "T1",
			CustomerID:  "C1",
			Timestamp:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			Amount:      dec("19.90"),
			ProductID:   "P1",
			ProductName: "Mug, large",
			Category:    "Home",
			Quantity:    2,
			UnitPrice:   dec("9.95"),
		},
		{
			OrderID:    "T2",
			CustomerID: "C2",
			Timestamp:  time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Amount:     dec("5"),
		},
	}

	require.NoError(t, w.SaveTransactions(context.Background(), want))

	got, err := NewCSVTransactionRepository(DefaultColumns()).
		GetTransactions(context.Background(), filepath.Join(dir, TransactionsFile))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assertTransaction(t, want[i], got[i])
	}
}
