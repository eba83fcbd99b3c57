package wavelet

// Forward runs the multilevel Haar decomposition down to at most `levels`
// levels deep (levels is clamped against the plane's own depth: a small
// image simply bottoms out before using its full level budget). After it
// returns, p.At(0, 0) holds the coarsest LL, and the rest of the plane holds
// HL/LH/HH detail coefficients at progressively finer scales.
//
// precisionDigits implements precision-control mode: when it is positive
// and less than a level's accumulated scaling factor, inputs to that
// level's butterfly are right-shifted (rounded half away from zero) before
// the transform, discarding low-order bits. At precisionDigits == 0 no
// rescaling happens at any level and the transform is exactly invertible.
func (p *Plane) Forward(levels, precisionDigits int) {
	numLevels := p.NumLevels()
	lowest := maxInt(numLevels-levels, 0)

	for destLevel := numLevels - 1; destLevel >= lowest; destLevel-- {
		destLength := 1 << uint(destLevel)
		side := 2 * destLength
		dest := NewPlane(side, p.Channels)

		scalingDigits := (numLevels - destLevel) * 2
		rescaleDigits := scalingDigits - precisionDigits

		for i := 0; i < destLength; i++ {
			for j := 0; j < destLength; j++ {
				a := p.At(2*i, 2*j)
				b := p.At(2*i, 2*j+1)
				c := p.At(2*i+1, 2*j)
				d := p.At(2*i+1, 2*j+1)

				ll := dest.At(i, j)
				hl := dest.At(i, destLength+j)
				lh := dest.At(destLength+i, j)
				hh := dest.At(destLength+i, destLength+j)

				for k := 0; k < p.Channels; k++ {
					av, bv, cv, dv := a[k], b[k], c[k], d[k]
					if precisionDigits > 0 && rescaleDigits > 0 {
						av = Rescale(av, -rescaleDigits)
						bv = Rescale(bv, -rescaleDigits)
						cv = Rescale(cv, -rescaleDigits)
						dv = Rescale(dv, -rescaleDigits)
					}
					ll[k], hl[k], lh[k], hh[k] = ButterflyForward(av, bv, cv, dv)
				}
			}
		}

		p.copyTopLeft(dest)
	}
}

// Inverse is the exact inverse of Forward when called with the same levels
// and precisionDigits (exact only when precisionDigits == 0; otherwise it
// reconstructs the best available approximation from the rescaled
// coefficients).
func (p *Plane) Inverse(levels, precisionDigits int) {
	numLevels := p.NumLevels()
	lowest := maxInt(numLevels-levels, 0)

	for sourceLevel := lowest; sourceLevel < numLevels; sourceLevel++ {
		sourceLength := 1 << uint(sourceLevel)
		side := 2 * sourceLength
		dest := NewPlane(side, p.Channels)

		scalingDigits := (numLevels - sourceLevel) * 2
		rescaleDigits := scalingDigits - precisionDigits

		for i := 0; i < sourceLength; i++ {
			for j := 0; j < sourceLength; j++ {
				ll := p.At(i, j)
				hl := p.At(i, sourceLength+j)
				lh := p.At(sourceLength+i, j)
				hh := p.At(sourceLength+i, sourceLength+j)

				a := dest.At(2*i, 2*j)
				b := dest.At(2*i, 2*j+1)
				c := dest.At(2*i+1, 2*j)
				d := dest.At(2*i+1, 2*j+1)

				for k := 0; k < p.Channels; k++ {
					av, bv, cv, dv := ButterflyInverse(ll[k], hl[k], lh[k], hh[k])
					if precisionDigits > 0 && rescaleDigits > 0 {
						av = Rescale(av, rescaleDigits)
						bv = Rescale(bv, rescaleDigits)
						cv = Rescale(cv, rescaleDigits)
						dv = Rescale(dv, rescaleDigits)
					}
					a[k], b[k], c[k], d[k] = av, bv, cv, dv
				}
			}
		}

		p.copyTopLeft(dest)
	}
}

// copyTopLeft overwrites p's top-left dest.N x dest.N region with dest's
// contents, leaving the rest of p untouched.
func (p *Plane) copyTopLeft(dest *Plane) {
	rowWidth := dest.N * p.Channels
	for i := 0; i < dest.N; i++ {
		pRowOff := i * p.N * p.Channels
		dRowOff := i * dest.N * dest.Channels
		copy(p.Data[pRowOff:pRowOff+rowWidth], dest.Data[dRowOff:dRowOff+rowWidth])
	}
}
