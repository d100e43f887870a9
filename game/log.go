package game

import "github.com/sirupsen/logrus"

// Log receives engine events. Callers adjust its level and output.
var Log = logrus.New()
