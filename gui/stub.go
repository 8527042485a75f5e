// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package gui

import "github.com/jetsetilly/gopher8/curated"

// Stub is a GUI implementation that does nothing. For modes that do not
// want a window at all.
type Stub struct{}

// SetFeature implements the GUI interface. All requests are accepted and
// quietly dropped.
func (Stub) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	return nil
}

// GetFeature implements the GUI interface.
func (Stub) GetFeature(request FeatureReq) (FeatureReqData, error) {
	return nil, curated.Errorf(UnsupportedGuiFeature, request)
}
