package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func gatheredNames(t *testing.T) map[string]bool {
	t.Helper()
	families, err := customRegistry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestGlobalManager(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		So(globalManager, ShouldNotBeNil)
		So(GetRegistry(), ShouldEqual, customRegistry)

		Convey("When recording dataset metrics", func() {
			RecordDatasetLoadDuration(12.5)
			UpdateDatasetRows(1000)
			RecordDatasetRowSkipped()

			Convey("Then the dataset metric families are registered", func() {
				names := gatheredNames(t)
				So(names["fifadash_pipeline_dataset_load_duration_milliseconds"], ShouldBeTrue)
				So(names["fifadash_pipeline_dataset_rows"], ShouldBeTrue)
				So(names["fifadash_pipeline_dataset_rows_skipped_total"], ShouldBeTrue)
			})
		})

		Convey("When recording pipeline metrics", func() {
			RecordFilterRun(0.8, 42)
			RecordAggregateDuration(0.3)
			RecordHistogramDuration(0.2)

			Convey("Then the pipeline metric families are registered", func() {
				names := gatheredNames(t)
				So(names["fifadash_pipeline_filter_duration_milliseconds"], ShouldBeTrue)
				So(names["fifadash_pipeline_filtered_rows"], ShouldBeTrue)
				So(names["fifadash_pipeline_last_filtered_rows"], ShouldBeTrue)
				So(names["fifadash_pipeline_aggregate_duration_milliseconds"], ShouldBeTrue)
				So(names["fifadash_pipeline_histogram_duration_milliseconds"], ShouldBeTrue)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			RecordHTTPRequest("players", "GET", "200")
			RecordHTTPRequestDuration("players", "GET", "200", 1.2)
			RecordErrorByType("client_error", "medium")
			RecordErrorByEndpoint("players", "GET", "client_error")
			RecordErrorLatency("http", "client_error", 1.2)

			Convey("Then the HTTP metric families are registered", func() {
				names := gatheredNames(t)
				So(names["fifadash_pipeline_http_requests_total"], ShouldBeTrue)
				So(names["fifadash_pipeline_http_request_duration_milliseconds"], ShouldBeTrue)
				So(names["fifadash_pipeline_errors_by_type_total"], ShouldBeTrue)
				So(names["fifadash_pipeline_errors_by_endpoint_total"], ShouldBeTrue)
				So(names["fifadash_pipeline_error_latency_milliseconds"], ShouldBeTrue)
			})
		})

		Convey("When recording system metrics", func() {
			UpdateSystemMemoryUsage(1 << 20)
			UpdateSystemGoroutineCount(8)
			RecordSystemGCPauseTime(0.1)

			Convey("Then the system metric families are registered", func() {
				names := gatheredNames(t)
				So(names["fifadash_pipeline_system_memory_bytes"], ShouldBeTrue)
				So(names["fifadash_pipeline_system_goroutines"], ShouldBeTrue)
				So(names["fifadash_pipeline_system_gc_pause_milliseconds"], ShouldBeTrue)
			})
		})
	})
}

func TestNewManagerOptions(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("testns"),
			WithSubsystem("testsub"),
			WithHistogramBuckets([]float64{1, 10, 100}),
			WithPrometheusRegistry(reg),
		)
		So(m, ShouldNotBeNil)

		Convey("Then metrics use the configured namespace and subsystem", func() {
			m.filterDuration.Observe(5)
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			found := false
			for _, f := range families {
				if strings.HasPrefix(f.GetName(), "testns_testsub_") {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}

func TestDisabledManager(t *testing.T) {
	Convey("Given a disabled manager", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(WithMetricsEnabled(false), WithPrometheusRegistry(reg))

		Convey("Then the enabled flag is off", func() {
			So(m.enabled, ShouldBeFalse)
		})
	})
}
