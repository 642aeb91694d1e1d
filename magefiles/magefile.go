// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the advent project using Mage.
//
// Usage:
//
//	mage build          Compile advent binary to bin/
//	mage test:all       Run all tests
//	mage test:short     Run the puzzle, harness and days tests only
//	mage test:cover     Run all tests with a coverage profile
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install advent to GOPATH/bin
//	mage stats          Print Go LOC and solved-day counts
package main
