package blend

func clearFunc(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func srcFunc(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func dstFunc(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// weighted returns S*fs + D*fd per channel.
func weighted(sr, sg, sb, sa, fs, dr, dg, db, da, fd byte) (byte, byte, byte, byte) {
	return addClamp(mulDiv255(sr, fs), mulDiv255(dr, fd)),
		addClamp(mulDiv255(sg, fs), mulDiv255(dg, fd)),
		addClamp(mulDiv255(sb, fs), mulDiv255(db, fd)),
		addClamp(mulDiv255(sa, fs), mulDiv255(da, fd))
}

func srcOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	switch sa {
	case 255:
		return sr, sg, sb, sa
	case 0:
		return dr, dg, db, da
	}
	return weighted(sr, sg, sb, sa, 255, dr, dg, db, da, 255-sa)
}

func dstOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return weighted(sr, sg, sb, sa, 255-da, dr, dg, db, da, 255)
}

func srcIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return weighted(sr, sg, sb, sa, da, dr, dg, db, da, 0)
}

func dstIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return weighted(sr, sg, sb, sa, 0, dr, dg, db, da, sa)
}

func srcOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return weighted(sr, sg, sb, sa, 255-da, dr, dg, db, da, 0)
}

func dstOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return weighted(sr, sg, sb, sa, 0, dr, dg, db, da, 255-sa)
}

func srcAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	r, g, b, _ := weighted(sr, sg, sb, sa, da, dr, dg, db, da, 255-sa)
	return r, g, b, da
}

func dstAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	r, g, b, _ := weighted(sr, sg, sb, sa, 255-da, dr, dg, db, da, sa)
	return r, g, b, sa
}

func xorFunc(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return weighted(sr, sg, sb, sa, 255-da, dr, dg, db, da, 255-sa)
}

func plus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}
