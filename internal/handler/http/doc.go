// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the task manager API.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, CORS
// and response compression are handled in this package before requests are
// delegated to the service layer. Every response, including errors, is
// written as the JSON envelope [models.Response].
package http
