package pollparameterresponsetype

/*
 * Copyright 2020-2026 Aldelo, LP
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

// go:generate gen-enumer -type PollParameterResponseType

// PollParameterResponseType is the content a requester wants in messages sent
// in fulfillment of a poll or subscription.
//
// codes mirror poll.thrift and must never be renumbered
type PollParameterResponseType int32

const (
	// COUNT_ONLY requests messages that carry count information only (content is not included)
	COUNT_ONLY PollParameterResponseType = 0

	// FULL requests messages that carry full content
	FULL PollParameterResponseType = 1
)

const (
	_PollParameterResponseTypeKey_0 = "COUNT_ONLY"
	_PollParameterResponseTypeKey_1 = "FULL"
)

const (
	_PollParameterResponseTypeCaption_0 = "CountOnly"
	_PollParameterResponseTypeCaption_1 = "Full"
)

const (
	_PollParameterResponseTypeDescription_0 = "Messages Contain Count Information Only"
	_PollParameterResponseTypeDescription_1 = "Messages Contain Full Content"
)
