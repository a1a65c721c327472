/*
Package fourier is a pure Go library for trigonometric polynomial approximations of 2π-periodic real functions.
It provides the algebra of truncated Fourier series (addition, multiplication, differentiation and
antidifferentiation), a composite trapezium transformer that estimates Fourier coefficients from an
arbitrary function, and a closed-form evaluator of the periodic one-dimensional heat equation.
*/
package fourier
