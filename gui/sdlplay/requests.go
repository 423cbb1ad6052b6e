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


package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

// SetFeature implements the gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.service <- func() error {
		return scr.serviceFeatureRequest(request, args)
	}
	return <-scr.serviceErr
}

// featureRequests have been handed over to the service channel. we service
// the request here.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) serviceFeatureRequest(request gui.FeatureReq, args []gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf("sdlplay: %v", fmt.Sprintf("%v: %v", request, r))
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		scr.events = args[0].(chan userinput.Event)

	case gui.ReqSetTitle:
		scr.window.SetTitle(fmt.Sprintf("%s - %s", windowTitle, args[0].(string)))

	case gui.ReqSetVisibility:
		scr.showWindow(args[0].(bool))

	case gui.ReqSetScale:
		err = scr.setScale(args[0].(int))

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return err
}
