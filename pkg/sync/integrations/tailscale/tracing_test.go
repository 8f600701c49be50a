/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tailscale

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingFetcher(t *testing.T, endpoint string, client *http.Client) (*DefaultTailscaleIntegration, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	fetcher := newTestFetcher(endpoint, client)
	fetcher.Tracer = provider.Tracer("tailscale-test")

	return fetcher, recorder
}

func TestFetchDevices_SpanOnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, sampleDevicesJSON)
	}))
	defer server.Close()

	fetcher, recorder := newRecordingFetcher(t, server.URL, server.Client())

	_, err := fetcher.FetchDevices(context.Background(), testAPIKey)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tailscale.FetchDevices", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("device_count", 3))
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestFetchDevices_SpanOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	fetcher, recorder := newRecordingFetcher(t, server.URL, server.Client())

	_, err := fetcher.FetchDevices(context.Background(), testAPIKey)
	require.ErrorIs(t, err, ErrFetchFailed)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.NotEmpty(t, spans[0].Events())
}

func TestFetchDevices_NoSpanWithoutAPIKey(t *testing.T) {
	fetcher, recorder := newRecordingFetcher(t, "http://127.0.0.1:0", http.DefaultClient)

	_, err := fetcher.FetchDevices(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, recorder.Ended())
}
