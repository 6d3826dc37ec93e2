/*
Package datastructures is the root of a small collection of container types.

Containers live in sub-packages:

  dynarray   a generic resizable array with explicit capacity doubling

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package datastructures
