// SPDX-License-Identifier: EPL-2.0

// Package imaging turns decoded video frames into the brightness matrices
// the converters work on.
//
// A Frame holds one float64 per pixel in [0, 1]. FromImage converts any
// image.Image with the luma weights of image/color. SquareCrop, Resize
// (area averaging) and Bicubic cover the geometry the converters need;
// MedianThreshold, Foreground and KMeans cover the cluster extraction used
// by the shifters converter.
//
//	frame, err := imaging.FromImage(img)
//	if err != nil {
//	    return err
//	}
//	small, err := frame.SquareCrop().Resize(8, 8)
package imaging
