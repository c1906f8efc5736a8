// Copyright (c) 2025, The Schafer Family Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_records_parsed_total",
			Help: "Total number of recipe records accepted by the parser",
		},
	)
	recordsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_records_dropped_total",
			Help: "Total number of headings dropped for having no ingredients",
		},
	)
	recordsByCategory = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_records_by_category_total",
			Help: "Total number of accepted records by assigned category",
		},
		[]string{"category"},
	)
	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_parse_duration_seconds",
			Help:    "Duration of a single document parse in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)
)

func recordParseMetrics(kept []*Recipe, dropped int, elapsed time.Duration) {
	recordsParsed.Add(float64(len(kept)))
	recordsDropped.Add(float64(dropped))
	for _, r := range kept {
		recordsByCategory.WithLabelValues(r.Category.String()).Inc()
	}
	parseDuration.Observe(elapsed.Seconds())
}
