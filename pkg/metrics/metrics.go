// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics provides service for collecting various metrics about
// the hub. It is intended to be used with the Prometheus
// client library.
package metrics

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace is prefixed before every metric. If it is changed, it must
// be done before any metrics collector is registered.
var Namespace = "hub"

type Collector interface {
	Metrics() []prometheus.Collector
}

// PrometheusCollectorsFromFields returns all the prometheus.Collector
// struct fields of i, so that services can construct their metrics as
// plain struct fields and expose them in one call.
func PrometheusCollectorsFromFields(i interface{}) (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}
