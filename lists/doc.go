//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package lists continues and indents markdown-style lists.
// It knows nothing about buffers or windows: callers pass in the text
// around the cursor and get back an Edit describing what to delete and
// what to insert, expressed in rune offsets from the start of a line.
// Callers apply the edits themselves, which keeps undo, scrolling and
// cursor placement in the hands of the editor.
package lists
