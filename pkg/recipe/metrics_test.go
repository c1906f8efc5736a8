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
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestParseMetrics(t *testing.T) {
	parsed := testutil.ToFloat64(recordsParsed)
	dropped := testutil.ToFloat64(recordsDropped)
	dips := testutil.ToFloat64(recordsByCategory.WithLabelValues("Dip/Sauce"))

	parseString(t, "### The Schafer Family\nHello.\n"+appleDip)

	assert.Equal(t, parsed+1, testutil.ToFloat64(recordsParsed))
	assert.Equal(t, dropped+1, testutil.ToFloat64(recordsDropped))
	assert.Equal(t, dips+1, testutil.ToFloat64(recordsByCategory.WithLabelValues("Dip/Sauce")))
}
