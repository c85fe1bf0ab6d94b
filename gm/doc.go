// Package gm contains the small amount of 2d math needed to describe
// local transforms: vectors and angles.
package gm
