// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

/*
Package validation validates request DTOs with go-playground/validator.

A single validator is built once with WithRequiredStructEnabled and reports
fields by their JSON names. Custom tags:

  - elementtype: the string parses as a models.ElementType
  - username: letters, digits, '.', '_' and '-'
  - notblank: not empty after trimming spaces

ValidateStruct returns a *RequestValidationError whose ToAPIError form is
rendered by the API as a VALIDATION_ERROR with one message per field:

	type likeRequest struct {
	    CareerID     int    `json:"careerId" validate:"required,gt=0"`
	    ElementType  string `json:"elementType" validate:"required,elementtype"`
	    ElementValue string `json:"elementValue" validate:"required,notblank"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    ...
	}
*/
package validation
