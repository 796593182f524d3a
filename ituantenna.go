// Package ituantenna couples the ITU-R antenna pattern models with a
// propagation model to evaluate single-link budgets for coordination and
// interference studies.
package ituantenna

import (
	"math"

	log "github.com/sirupsen/logrus"
	CM "github.com/wiless/channelmodel"
	"github.com/wiless/vlib"

	"github.com/wiless/ituantenna/antenna"
)

// DefaultErrPL is the pathloss substituted when the propagation model
// cannot evaluate a link.
var DefaultErrPL float64 = 999999

// Station is one end of a link: a location, the antenna boresight bearing
// and, for the transmit side, the power fed into the antenna.
type Station struct {
	Location   vlib.Location3D
	BearingDeg float64
	TxPowerDbm float64
	Indoor     bool
}

// Link is the evaluated budget of one transmitter-receiver pair. Defined
// is false when the pattern leaves the transmit gain undefined at the
// link direction; the power fields are then meaningless.
type Link struct {
	Distance2D float64
	AzimuthDeg float64
	ElevDeg    float64
	TxGainDbi  float64
	PathLossDb float64
	RxPowerDbm float64
	SNRDb      float64
	LOS        bool
	Defined    bool
}

// WSystem carries the system-wide radio settings of a study.
type WSystem struct {
	FrequencyGHz float64
	BandwidthMHz float64
	NoisePSDdBm  float64
	// OtherLossFn adds deployment-specific losses on top of the pathloss.
	OtherLossFn func(pl CM.PLModel, tx, rx Station, isLOS bool) float64
}

func NewWSystem() WSystem {
	var w WSystem
	w.BandwidthMHz = 10.0
	w.NoisePSDdBm = -174.0
	return w
}

// EvaluateLink computes the budget from tx to rx through the given antenna
// pattern and propagation model. The direction keys handed to the pattern
// cover every family: the off-axis angle, and the azimuth and elevation
// relative to the transmit boresight.
func (w WSystem) EvaluateLink(ant antenna.Model, pl CM.PLModel, tx, rx Station) (Link, error) {
	var link Link
	link.Distance2D = tx.Location.Distance2DFrom(rx.Location)

	bearing := degrees(math.Atan2(rx.Location.Y-tx.Location.Y, rx.Location.X-tx.Location.X))
	link.AzimuthDeg = antenna.Wrap180To180(bearing - tx.BearingDeg)
	link.ElevDeg = degrees(math.Atan2(rx.Location.Z-tx.Location.Z, link.Distance2D))

	gain, defined, err := ant.Gain(antenna.Fields{
		"off_axis_angle": offAxis(link.AzimuthDeg, link.ElevDeg),
		"azimuth":        link.AzimuthDeg,
		"elevation":      link.ElevDeg,
	})
	if err != nil {
		return link, err
	}
	link.Defined = defined
	link.TxGainDbi = gain
	if !defined {
		return link, nil
	}

	link.PathLossDb = DefaultErrPL
	if pl.IsSupported(w.FrequencyGHz) {
		var d2In float64
		if rx.Indoor {
			d2In = link.Distance2D * 0.1
		}
		plDb, isLOS, plerr := pl.PLbetweenIndoor(tx.Location, rx.Location, d2In)
		if plerr != nil {
			log.Infof("EvaluateLink: (%v > %v) %v", tx.Location, rx.Location, plerr)
		} else {
			link.PathLossDb = plDb
			link.LOS = isLOS
			if rx.Indoor {
				link.PathLossDb += pl.O2ILossDb(w.FrequencyGHz, d2In)
			}
		}
	} else {
		log.Infof("EvaluateLink: %v GHz not supported by %s", w.FrequencyGHz, pl.Env())
	}
	if w.OtherLossFn != nil {
		link.PathLossDb += w.OtherLossFn(pl, tx, rx, link.LOS)
	}

	n0 := w.NoisePSDdBm - 30 + vlib.Db(w.BandwidthMHz*1e6)
	link.RxPowerDbm = tx.TxPowerDbm + link.TxGainDbi - link.PathLossDb
	link.SNRDb = link.RxPowerDbm - n0
	return link, nil
}

// offAxis is the total angle between the boresight and the link direction.
func offAxis(azDeg, elDeg float64) float64 {
	cosAngle := math.Cos(azDeg*math.Pi/180) * math.Cos(elDeg*math.Pi/180)
	return degrees(math.Acos(math.Max(-1, math.Min(1, cosAngle))))
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
