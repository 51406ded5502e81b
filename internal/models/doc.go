// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

// Package models defines the records shared across CareerCanvas packages:
// catalog careers, users, liked career elements, quiz results and chat
// conversations.
//
// Wire field names are camelCase to match the web client.
package models
