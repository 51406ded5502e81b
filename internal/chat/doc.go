// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package chat implements the career advisor assistant.

Each turn builds a system prompt from the user's latest quiz answers, the
careers they liked and the career they are viewing, then asks an
OpenAI-compatible chat completions API for the reply. The client sits
behind a circuit breaker and a per-user token bucket. When the model is
disabled, rate limited, failing or the breaker is open, a keyword-based
reply is returned instead, so a chat turn only fails on storage errors.

Both the user message and the reply are appended to the conversation.
*/
package chat
