package splitstat

import "log"

//HandleError interrupts the execution flow in case of error
func HandleError(err error) {
	if err != nil {
		log.Panic(err)
	}
}
